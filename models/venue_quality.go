package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// QualityAttributes is the sealed set of sport-specific condition records a
// venue can carry. Exactly one variant applies per venue, selected by its
// sport. Numeric sub-scores run 1 (worst) to 5 (best) unless noted inverted,
// where a lower raw value is the better condition.
type QualityAttributes interface {
	qualityAttributes()
}

type BasketballCourtQuality struct {
	RimQuality         int  `bson:"rimQuality" json:"rimQuality"`
	HasNets            bool `bson:"hasNets" json:"hasNets"`
	Slipperiness       int  `bson:"slipperiness" json:"slipperiness"` // inverted
	Lighting           int  `bson:"lighting" json:"lighting"`
	BackboardCondition int  `bson:"backboardCondition" json:"backboardCondition"`
	LineVisibility     int  `bson:"lineVisibility" json:"lineVisibility"`
	SingleRim          bool `bson:"singleRim" json:"singleRim"` // single rims score, double rims don't
}

type GolfCourseQuality struct {
	Patchiness       int `bson:"patchiness" json:"patchiness"` // inverted
	GrassQuality     int `bson:"grassQuality" json:"grassQuality"`
	GreenSpeed       int `bson:"greenSpeed" json:"greenSpeed"`
	BunkerCondition  int `bson:"bunkerCondition" json:"bunkerCondition"`
	FairwayCondition int `bson:"fairwayCondition" json:"fairwayCondition"`
	Drainage         int `bson:"drainage" json:"drainage"`
}

// TennisSurface is the court surface material. It is descriptive only and
// does not contribute to the quality score.
type TennisSurface string

const (
	SurfaceHard  TennisSurface = "hard"
	SurfaceClay  TennisSurface = "clay"
	SurfaceGrass TennisSurface = "grass"
)

type TennisCourtQuality struct {
	Surface          TennisSurface `bson:"surface" json:"surface"`
	SurfaceCondition int           `bson:"surfaceCondition" json:"surfaceCondition"`
	NetCondition     int           `bson:"netCondition" json:"netCondition"`
	LineVisibility   int           `bson:"lineVisibility" json:"lineVisibility"`
	Lighting         int           `bson:"lighting" json:"lighting"`
	Fencing          int           `bson:"fencing" json:"fencing"`
}

// StudioQuality covers Pilates, Yoga, Lagree, Barre and Meditation venues,
// which share a single schema.
type StudioQuality struct {
	Cleanliness        int `bson:"cleanliness" json:"cleanliness"`
	EquipmentQuality   int `bson:"equipmentQuality" json:"equipmentQuality"`
	Flooring           int `bson:"flooring" json:"flooring"`
	TemperatureControl int `bson:"temperatureControl" json:"temperatureControl"`
	Ambiance           int `bson:"ambiance" json:"ambiance"`
	Spacing            int `bson:"spacing" json:"spacing"`
}

type SoccerFieldQuality struct {
	FieldCondition int `bson:"fieldCondition" json:"fieldCondition"`
	TurfQuality    int `bson:"turfQuality" json:"turfQuality"`
	GoalQuality    int `bson:"goalQuality" json:"goalQuality"`
	LineVisibility int `bson:"lineVisibility" json:"lineVisibility"`
	Drainage       int `bson:"drainage" json:"drainage"`
	Lighting       int `bson:"lighting" json:"lighting"`
}

func (BasketballCourtQuality) qualityAttributes() {}
func (GolfCourseQuality) qualityAttributes()      {}
func (TennisCourtQuality) qualityAttributes()     {}
func (StudioQuality) qualityAttributes()          {}
func (SoccerFieldQuality) qualityAttributes()     {}

// SportCategory maps a sport name to the quality schema it uses. The five
// studio modalities share the "Studio" category. Unrecognised sports map to
// an empty category.
func SportCategory(sport string) string {
	switch sport {
	case "Basketball":
		return "Basketball"
	case "Golf":
		return "Golf"
	case "Tennis":
		return "Tennis"
	case "Pilates", "Yoga", "Lagree", "Barre", "Meditation":
		return "Studio"
	case "Soccer":
		return "Soccer"
	default:
		return ""
	}
}

// DecodeQualityAttributes unmarshals a stored quality sub-document into the
// variant matching the venue's sport.
func DecodeQualityAttributes(sport string, raw bson.Raw) (QualityAttributes, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("venue has no quality attributes")
	}
	switch SportCategory(sport) {
	case "Basketball":
		var q BasketballCourtQuality
		if err := bson.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("failed to decode basketball quality attributes: %w", err)
		}
		return q, nil
	case "Golf":
		var q GolfCourseQuality
		if err := bson.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("failed to decode golf quality attributes: %w", err)
		}
		return q, nil
	case "Tennis":
		var q TennisCourtQuality
		if err := bson.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("failed to decode tennis quality attributes: %w", err)
		}
		return q, nil
	case "Studio":
		var q StudioQuality
		if err := bson.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("failed to decode studio quality attributes: %w", err)
		}
		return q, nil
	case "Soccer":
		var q SoccerFieldQuality
		if err := bson.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("failed to decode soccer quality attributes: %w", err)
		}
		return q, nil
	default:
		return nil, fmt.Errorf("unsupported sport %q", sport)
	}
}
