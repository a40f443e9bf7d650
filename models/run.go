package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LinkMapping maps an affiliate URL to the saved product document for it
type LinkMapping map[string]string

// SkippedLink is a mapped anchor that was left untouched
type SkippedLink struct {
	URL       string `json:"url" bson:"url"`
	LocalPath string `json:"local_path" bson:"local_path"`
	Reason    string `json:"reason" bson:"reason"`
}

// SpliceRun summarizes one splice of a host document
type SpliceRun struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	HostSource     string             `json:"host_source" bson:"host_source"`
	OutputFile     string             `json:"output_file" bson:"output_file"`
	ContainerClass string             `json:"container_class" bson:"container_class"`
	Replacements   int                `json:"replacements" bson:"replacements"`
	Skipped        []SkippedLink      `json:"skipped,omitempty" bson:"skipped,omitempty"`
	Products       []ProductRecord    `json:"products,omitempty" bson:"products,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
