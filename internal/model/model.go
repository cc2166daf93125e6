// Package model contains domain models/data structures shared across layers.
// No database-specific tags or business logic here.
package model

import "time"

// FileMetadata describes an uploaded file. The object store owns the bytes
// under Filename as the key; the row and the blob are correlated by filename
// only, with no referential integrity between the two.
type FileMetadata struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	Filesize   int64     `json:"filesize"`
	Filetype   string    `json:"filetype"`
	UploadDate time.Time `json:"upload_date"`
}

// Record is a row of the demonstration table.
type Record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
