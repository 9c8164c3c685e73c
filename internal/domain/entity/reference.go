package entity

// Center is a drop-off recycling center shown to users as reference data.
type Center struct {
	ID       string   `json:"id" bson:"_id,omitempty"`
	Name     string   `json:"name" bson:"name"`
	Address  string   `json:"address" bson:"address"`
	City     string   `json:"city" bson:"city"`
	Phone    string   `json:"phone" bson:"phone"`
	Accepted []string `json:"accepted" bson:"accepted"` // waste types taken
}

// Tutorial is an educational article about sorting and recycling waste.
type Tutorial struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Title    string `json:"title" bson:"title"`
	Summary  string `json:"summary" bson:"summary"`
	VideoURL string `json:"videoUrl" bson:"video_url"`
}
