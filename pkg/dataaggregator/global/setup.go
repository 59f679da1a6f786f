package global

import (
	"github.com/yatrago/yatrago/pkg/dataaggregator"
	"github.com/yatrago/yatrago/pkg/dataaggregator/source/databaselookup"
	"github.com/yatrago/yatrago/pkg/dataaggregator/source/itineraryplanner"
)

func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	databaseLookupSource := databaselookup.Source{}
	databaseLookupSource.Setup()
	dataaggregator.GlobalAggregator.RegisterSource(databaseLookupSource)

	dataaggregator.GlobalAggregator.RegisterSource(itineraryplanner.Source{})
}
