package validators

import "go.mongodb.org/mongo-driver/bson"

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"lot_id",
			"user_id",
			"vehicle_plate",
			"start_time",
			"end_time",
			"status",
			"original_amount_cents",
			"current_amount_cents",
			"version",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"lot_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"vehicle_plate": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 12,
			},

			"start_time": bson.M{
				"bsonType": "date",
			},

			"end_time": bson.M{
				"bsonType": "date",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"upcoming",
					"active",
					"completed",
					"cancelled",
				},
			},

			"original_amount_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"current_amount_cents": bson.M{
				"bsonType": "long",
				"minimum":  0,
			},

			"is_free": bson.M{
				"bsonType": "bool",
			},

			"free_reason": bson.M{
				"bsonType": "string",
			},

			"payment_ref": bson.M{
				"bsonType": "string",
			},

			"version": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
