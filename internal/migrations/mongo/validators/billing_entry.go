package validators

import "go.mongodb.org/mongo-driver/bson"

var BillingEntryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"reservation_id",
			"kind",
			"amount_cents",
			"snapshot",
			"date",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"reservation_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"kind": bson.M{
				"bsonType": "string",
				"enum": []string{
					"charge",
					"refund",
				},
			},

			"amount_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"snapshot": bson.M{
				"bsonType": "object",
				"required": []string{"profile", "start_time", "end_time"},
				"properties": bson.M{
					"profile": bson.M{
						"bsonType": "object",
					},
					"start_time": bson.M{
						"bsonType": "date",
					},
					"end_time": bson.M{
						"bsonType": "date",
					},
					"surcharge_cents": bson.M{
						"bsonType": "long",
						"minimum":  0,
					},
				},
			},

			"payment_ref": bson.M{
				"bsonType": "string",
			},

			"date": bson.M{
				"bsonType": "date",
			},
		},
	},
}
