package model

// FactType identifies the type of a [Fact]. Any URI is a valid FactType; the
// constants enumerate the types defined by GEDCOM X.
type FactType string

// Person fact types.
const (
	FactAdoption            FactType = "http://gedcomx.org/Adoption"
	FactAdultChristening    FactType = "http://gedcomx.org/AdultChristening"
	FactAmnesty             FactType = "http://gedcomx.org/Amnesty"
	FactApprenticeship      FactType = "http://gedcomx.org/Apprenticeship"
	FactArrest              FactType = "http://gedcomx.org/Arrest"
	FactAward               FactType = "http://gedcomx.org/Award"
	FactBaptism             FactType = "http://gedcomx.org/Baptism"
	FactBarMitzvah          FactType = "http://gedcomx.org/BarMitzvah"
	FactBatMitzvah          FactType = "http://gedcomx.org/BatMitzvah"
	FactBirth               FactType = "http://gedcomx.org/Birth"
	FactBirthNotice         FactType = "http://gedcomx.org/BirthNotice"
	FactBlessing            FactType = "http://gedcomx.org/Blessing"
	FactBurial              FactType = "http://gedcomx.org/Burial"
	FactCaste               FactType = "http://gedcomx.org/Caste"
	FactCensus              FactType = "http://gedcomx.org/Census"
	FactChristening         FactType = "http://gedcomx.org/Christening"
	FactCircumcision        FactType = "http://gedcomx.org/Circumcision"
	FactConfirmation        FactType = "http://gedcomx.org/Confirmation"
	FactCremation           FactType = "http://gedcomx.org/Cremation"
	FactDeath               FactType = "http://gedcomx.org/Death"
	FactEducation           FactType = "http://gedcomx.org/Education"
	FactEmigration          FactType = "http://gedcomx.org/Emigration"
	FactExcommunication     FactType = "http://gedcomx.org/Excommunication"
	FactFirstCommunion      FactType = "http://gedcomx.org/FirstCommunion"
	FactFuneral             FactType = "http://gedcomx.org/Funeral"
	FactGraduation          FactType = "http://gedcomx.org/Graduation"
	FactImmigration         FactType = "http://gedcomx.org/Immigration"
	FactImprisonment        FactType = "http://gedcomx.org/Imprisonment"
	FactLandTransaction     FactType = "http://gedcomx.org/LandTransaction"
	FactLiving              FactType = "http://gedcomx.org/Living"
	FactMaritalStatus       FactType = "http://gedcomx.org/MaritalStatus"
	FactMilitaryService     FactType = "http://gedcomx.org/MilitaryService"
	FactNaturalization      FactType = "http://gedcomx.org/Naturalization"
	FactObituary            FactType = "http://gedcomx.org/Obituary"
	FactOccupation          FactType = "http://gedcomx.org/Occupation"
	FactOrdination          FactType = "http://gedcomx.org/Ordination"
	FactProbate             FactType = "http://gedcomx.org/Probate"
	FactProperty            FactType = "http://gedcomx.org/Property"
	FactReligion            FactType = "http://gedcomx.org/Religion"
	FactResidence           FactType = "http://gedcomx.org/Residence"
	FactRetirement          FactType = "http://gedcomx.org/Retirement"
	FactStillbirth          FactType = "http://gedcomx.org/Stillbirth"
	FactWill                FactType = "http://gedcomx.org/Will"
	FactYahrzeit            FactType = "http://gedcomx.org/Yahrzeit"
	FactPhysicalDescription FactType = "http://gedcomx.org/PhysicalDescription"
)

// Couple relationship fact types.
const (
	FactAnnulment           FactType = "http://gedcomx.org/Annulment"
	FactCommonLawMarriage   FactType = "http://gedcomx.org/CommonLawMarriage"
	FactCivilUnion          FactType = "http://gedcomx.org/CivilUnion"
	FactDivorce             FactType = "http://gedcomx.org/Divorce"
	FactDivorceFiling       FactType = "http://gedcomx.org/DivorceFiling"
	FactDomesticPartnership FactType = "http://gedcomx.org/DomesticPartnership"
	FactEngagement          FactType = "http://gedcomx.org/Engagement"
	FactMarriage            FactType = "http://gedcomx.org/Marriage"
	FactMarriageBanns       FactType = "http://gedcomx.org/MarriageBanns"
	FactMarriageContract    FactType = "http://gedcomx.org/MarriageContract"
	FactMarriageLicense     FactType = "http://gedcomx.org/MarriageLicense"
	FactMarriageNotice      FactType = "http://gedcomx.org/MarriageNotice"
	FactSeparation          FactType = "http://gedcomx.org/Separation"
)

// Parent-child relationship fact types.
const (
	FactAdoptiveParent   FactType = "http://gedcomx.org/AdoptiveParent"
	FactBiologicalParent FactType = "http://gedcomx.org/BiologicalParent"
	FactFosterParent     FactType = "http://gedcomx.org/FosterParent"
	FactGuardianParent   FactType = "http://gedcomx.org/GuardianParent"
	FactStepParent       FactType = "http://gedcomx.org/StepParent"
)

//nolint:gochecknoglobals
var factTypes = newVocabulary(
	FactAdoption, FactAdultChristening, FactAmnesty, FactApprenticeship,
	FactArrest, FactAward, FactBaptism, FactBarMitzvah, FactBatMitzvah,
	FactBirth, FactBirthNotice, FactBlessing, FactBurial, FactCaste,
	FactCensus, FactChristening, FactCircumcision, FactConfirmation,
	FactCremation, FactDeath, FactEducation, FactEmigration,
	FactExcommunication, FactFirstCommunion, FactFuneral, FactGraduation,
	FactImmigration, FactImprisonment, FactLandTransaction, FactLiving,
	FactMaritalStatus, FactMilitaryService, FactNaturalization,
	FactObituary, FactOccupation, FactOrdination, FactProbate,
	FactProperty, FactReligion, FactResidence, FactRetirement,
	FactStillbirth, FactWill, FactYahrzeit, FactPhysicalDescription,

	FactAnnulment, FactCommonLawMarriage, FactCivilUnion, FactDivorce,
	FactDivorceFiling, FactDomesticPartnership, FactEngagement,
	FactMarriage, FactMarriageBanns, FactMarriageContract,
	FactMarriageLicense, FactMarriageNotice, FactSeparation,

	FactAdoptiveParent, FactBiologicalParent, FactFosterParent,
	FactGuardianParent, FactStepParent,
)

// ParseFactType returns the FactType for str, which may be a URI or the
// short term of a GEDCOM X fact type such as "Birth". Any other string is a
// custom fact type.
func ParseFactType(str string) FactType { return factTypes.parse(str) }

// KnownFactTypes returns the fact types defined by GEDCOM X, sorted by URI.
func KnownFactTypes() []FactType { return factTypes.sorted() }

// IsKnown returns true if ft is defined by GEDCOM X.
func (ft FactType) IsKnown() bool { return factTypes.known(ft) }

// Term returns the short term for ft, such as "Birth", or the full URI for
// custom fact types.
func (ft FactType) Term() string { return factTypes.term(ft) }

// String returns the URI of ft.
func (ft FactType) String() string { return string(ft) }
