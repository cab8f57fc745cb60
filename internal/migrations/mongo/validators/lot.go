package validators

import "go.mongodb.org/mongo-driver/bson"

var LotValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"rate_model",
			"hourly_rate_cents",
			"semester_rate_cents",
			"is_metered",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			// Not an enum on purpose: the engine tolerates unrecognized
			// rate models by falling back to hourly.
			"rate_model": bson.M{
				"bsonType": "string",
			},

			"hourly_rate_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"semester_rate_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"is_metered": bson.M{
				"bsonType": "bool",
			},

			"is_ev": bson.M{
				"bsonType": "bool",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
