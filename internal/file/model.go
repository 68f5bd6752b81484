package file

import "time"

const DefaultContentType = "application/octet-stream"

// FileDocument is the metadata of an uploaded file. Content lives in the
// bucket under Key.
type FileDocument struct {
	Id          string    `bson:"_id" json:"id"`
	OwnerId     string    `bson:"ownerId" json:"ownerId"`
	Name        string    `bson:"name" json:"name"`
	ContentType string    `bson:"contentType" json:"contentType"`
	Size        int64     `bson:"size" json:"size"`
	Key         string    `bson:"key" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
