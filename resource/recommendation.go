package resource

import "time"

// PersonalRecommendation is a personalized content recommendation.
type PersonalRecommendation struct {
	ResourceHeader
	Attributes    *PersonalRecommendationAttributes    `json:"attributes,omitempty"`
	Relationships *PersonalRecommendationRelationships `json:"relationships,omitempty"`
}

// PersonalRecommendationAttributes are the attributes of a personal
// recommendation.
type PersonalRecommendationAttributes struct {
	Kind           RecommendationKind    `json:"kind"`
	NextUpdateDate time.Time             `json:"nextUpdateDate"`
	Reason         *RecommendationString `json:"reason,omitempty"`
	ResourceTypes  []string              `json:"resourceTypes"`
	Title          *RecommendationString `json:"title,omitempty"`
}

// RecommendationKind is the kind of a personal recommendation.
type RecommendationKind string

// Personal recommendation kinds.
const (
	RecommendationMusic          RecommendationKind = "music-recommendations"
	RecommendationRecentlyPlayed RecommendationKind = "recently-played"
	RecommendationGeneric        RecommendationKind = "unknown"
)

// RecommendationString is a localized display string for a
// recommendation's title or reason.
type RecommendationString struct {
	StringForDisplay string `json:"stringForDisplay"`
}

// PersonalRecommendationRelationships are the relationships of a
// personal recommendation. Contents can be resources of any kind.
type PersonalRecommendationRelationships struct {
	Contents *Relationship[Resource] `json:"contents,omitempty"`
}
