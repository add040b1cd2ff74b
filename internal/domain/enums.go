package domain

// Jurisdiction is the inspectorate an inspection body belongs to.
type Jurisdiction string

const (
	JurisdictionFBiH          Jurisdiction = "FBIH"
	JurisdictionRS            Jurisdiction = "RS"
	JurisdictionDistriktBrcko Jurisdiction = "DISTRIKT_BRCKO"
)

// AllJurisdictions lists every jurisdiction in declaration order.
var AllJurisdictions = []Jurisdiction{
	JurisdictionFBiH,
	JurisdictionRS,
	JurisdictionDistriktBrcko,
}

func (j Jurisdiction) String() string { return string(j) }

func (j Jurisdiction) IsValid() bool {
	switch j {
	case JurisdictionFBiH, JurisdictionRS, JurisdictionDistriktBrcko:
		return true
	}
	return false
}

// DisplayName returns the human-readable name of the jurisdiction.
func (j Jurisdiction) DisplayName() string {
	switch j {
	case JurisdictionFBiH:
		return "Federacija Bosne i Hercegovine"
	case JurisdictionRS:
		return "Republika Srpska"
	case JurisdictionDistriktBrcko:
		return "Brčko Distrikt BiH"
	}
	return string(j)
}

// Competence is the area of regulatory authority of an inspection body.
type Competence string

const (
	CompetenceMarket         Competence = "TRZISNA_INSPEKCIJA"
	CompetenceHealthSanitary Competence = "ZDRAVSTVENO_SANITARNA_INSPEKCIJA"
)

// AllCompetences lists every competence in declaration order.
var AllCompetences = []Competence{
	CompetenceMarket,
	CompetenceHealthSanitary,
}

func (c Competence) String() string { return string(c) }

func (c Competence) IsValid() bool {
	switch c {
	case CompetenceMarket, CompetenceHealthSanitary:
		return true
	}
	return false
}

// DisplayName returns the human-readable name of the competence.
func (c Competence) DisplayName() string {
	switch c {
	case CompetenceMarket:
		return "Tržišna inspekcija"
	case CompetenceHealthSanitary:
		return "Zdravstveno-sanitarna inspekcija"
	}
	return string(c)
}

// EntityType identifies the kind of domain entity (used in audit logs and errors).
type EntityType string

const (
	EntityTypeInspectionBody EntityType = "INSPECTION_BODY"
	EntityTypeProduct        EntityType = "PRODUCT"
	EntityTypeInspection     EntityType = "INSPECTION"
	EntityTypeUser           EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeInspectionBody, EntityTypeProduct, EntityTypeInspection, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
