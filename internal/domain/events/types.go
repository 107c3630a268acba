package events

type EventType string

const (
	EventTypeProfileUpdated  EventType = "PROFILE_UPDATED"
	EventTypeWeightRecorded  EventType = "WEIGHT_RECORDED"
	EventTypeNote            EventType = "NOTE"
	EventTypeMedicalVisit    EventType = "MEDICAL_VISIT"
	EventTypeMedicationPresc EventType = "MEDICATION_PRESCRIBED"
	EventTypeVaccine         EventType = "VACCINE"
	EventTypeDeworming       EventType = "DEWORMING"
	EventTypeFleaTreatment   EventType = "FLEA_TREATMENT"
	EventTypeBath            EventType = "BATH"
	EventTypeDietChanged     EventType = "DIET_CHANGED"
)

// IsValid limita los tipos aceptados al crear eventos.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeProfileUpdated, EventTypeWeightRecorded, EventTypeNote, EventTypeMedicalVisit,
		EventTypeMedicationPresc, EventTypeVaccine, EventTypeDeworming, EventTypeFleaTreatment,
		EventTypeBath, EventTypeDietChanged:
		return true
	}
	return false
}

type ActorType string

const (
	ActorTypeOwnerUser      ActorType = "OWNER_USER"
	ActorTypeExternalSystem ActorType = "EXTERNAL_SYSTEM"
)

type Source string

const (
	SourceManual      Source = "manual"
	SourceSmartScale  Source = "smart_scale"
	SourceIntegration Source = "integration"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityShared  Visibility = "shared"
)

type EventStatus string

const (
	EventStatusActive EventStatus = "active"
	EventStatusVoided EventStatus = "voided"
)
