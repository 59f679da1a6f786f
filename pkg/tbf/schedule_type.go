package tbf

type ScheduleType string

const (
	ScheduleTypeDaily        ScheduleType = "daily"
	ScheduleTypeWeekly                    = "weekly"
	ScheduleTypeSpecificDate              = "specific_date"
)
