package tbf

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DefaultClassKey is the fare class assumed when a route or booking does not
// name one.
const DefaultClassKey = "default"

// ClassMap is a per fare class seat count. Legacy route documents store a
// bare number instead of a class-keyed document, which is coerced to
// {default: n} when decoded so the rest of the code never has to type-check.
type ClassMap map[string]int

func (m *ClassMap) UnmarshalBSONValue(valueType bsontype.Type, data []byte) error {
	rawValue := bson.RawValue{Type: valueType, Value: data}

	switch valueType {
	case bson.TypeNull, bson.TypeUndefined:
		*m = nil
		return nil
	case bson.TypeInt32:
		*m = ClassMap{DefaultClassKey: int(rawValue.Int32())}
		return nil
	case bson.TypeInt64:
		*m = ClassMap{DefaultClassKey: int(rawValue.Int64())}
		return nil
	case bson.TypeDouble:
		*m = ClassMap{DefaultClassKey: int(rawValue.Double())}
		return nil
	case bson.TypeEmbeddedDocument:
		var classKeyed map[string]int
		if err := rawValue.Unmarshal(&classKeyed); err != nil {
			return err
		}

		*m = ClassMap(classKeyed)
		return nil
	}

	return fmt.Errorf("cannot decode %s into a seat map", valueType)
}

// FareMap is a per fare class base fare, with the same legacy scalar
// coercion as ClassMap.
type FareMap map[string]float64

func (m *FareMap) UnmarshalBSONValue(valueType bsontype.Type, data []byte) error {
	rawValue := bson.RawValue{Type: valueType, Value: data}

	switch valueType {
	case bson.TypeNull, bson.TypeUndefined:
		*m = nil
		return nil
	case bson.TypeInt32:
		*m = FareMap{DefaultClassKey: float64(rawValue.Int32())}
		return nil
	case bson.TypeInt64:
		*m = FareMap{DefaultClassKey: float64(rawValue.Int64())}
		return nil
	case bson.TypeDouble:
		*m = FareMap{DefaultClassKey: rawValue.Double()}
		return nil
	case bson.TypeEmbeddedDocument:
		var classKeyed map[string]float64
		if err := rawValue.Unmarshal(&classKeyed); err != nil {
			return err
		}

		*m = FareMap(classKeyed)
		return nil
	}

	return fmt.Errorf("cannot decode %s into a fare map", valueType)
}
