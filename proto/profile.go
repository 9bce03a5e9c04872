package proto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfiledOperation is the subset of a system.profile document this tool
// needs. The command payload is kept raw here; its shape depends on Op and
// is validated when the report is built.
type ProfiledOperation struct {
	Op          string    `bson:"op"`
	Ns          string    `bson:"ns"`
	Command     bson.Raw  `bson:"command"`
	PlanSummary string    `bson:"planSummary"`
	Millis      int       `bson:"millis"`
	Ts          time.Time `bson:"ts"`
}
