package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroundTruth is the exported form of a service record together with the
// document rendered from it.
type GroundTruth struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DocumentID string             `json:"document_id" bson:"document_id"`
	FileName   string             `json:"file_name" bson:"file_name"`
	FilePath   string             `json:"file_path" bson:"file_path"`
	FileSize   int64              `json:"file_size" bson:"file_size"` // in bytes
	Record     ServiceRecord      `json:"record" bson:"record"`
	LaborHours float64            `json:"labor_hours" bson:"labor_hours"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// NewGroundTruth builds the export document for a rendered record.
func NewGroundTruth(documentID, fileName, filePath string, fileSize int64, rec ServiceRecord) GroundTruth {
	return GroundTruth{
		DocumentID: documentID,
		FileName:   fileName,
		FilePath:   filePath,
		FileSize:   fileSize,
		Record:     rec,
		LaborHours: rec.LaborHours.InexactFloat64(),
	}
}
