package models

import "time"

type PhotoKey string

const (
	PhotoFront    PhotoKey = "front"
	PhotoSide     PhotoKey = "side"
	PhotoBack     PhotoKey = "back"
	PhotoSquat    PhotoKey = "squat"
	PhotoOverhead PhotoKey = "overhead"
)

// PhotoKeys lists the upload slots in display order.
var PhotoKeys = []PhotoKey{PhotoFront, PhotoSide, PhotoBack, PhotoSquat, PhotoOverhead}

var PhotoLabels = map[PhotoKey]string{
	PhotoFront:    "정면(서서)",
	PhotoSide:     "측면(서서)",
	PhotoBack:     "후면(서서)",
	PhotoSquat:    "스쿼트 하강(측면 추천)",
	PhotoOverhead: "팔 올린 자세(오버헤드)",
}

// FeedbackRequest records which photos were attached, never their bytes.
type FeedbackRequest struct {
	SubmittedAt time.Time           `json:"submittedAt"`
	Notes       string              `json:"notes"`
	PhotoKeys   []PhotoKey          `json:"photoKeys"`
	FileNames   map[PhotoKey]string `json:"fileNames,omitempty"`
}
