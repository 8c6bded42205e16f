package ows11

// Class identifiers.
const (
	ClassAbstractReferenceBaseType ClassID = iota
	ClassAcceptFormatsType
	ClassAcceptVersionsType
	ClassAddressType
	ClassAllowedValuesType
	ClassAnyValueType
	ClassBasicIdentificationType
	ClassBoundingBoxType
	ClassCapabilitiesBaseType
	ClassCodeType
	ClassContactType
	ClassContentsBaseType
	ClassDatasetDescriptionSummaryBaseType
	ClassDCPType
	ClassDescriptionType
	ClassDocumentRoot
	ClassDomainMetadataType
	ClassDomainType
	ClassExceptionReportType
	ClassExceptionType
	ClassGetCapabilitiesType
	ClassGetResourceByIdType
	ClassHTTPType
	ClassIdentificationType
	ClassKeywordsType
	ClassLanguageStringType
	ClassManifestType
	ClassMetadataType
	ClassNoValuesType
	ClassOnlineResourceType
	ClassOperationsMetadataType
	ClassOperationType
	ClassRangeType
	ClassReferenceGroupType
	ClassReferenceType
	ClassRequestMethodType
	ClassResponsiblePartySubsetType
	ClassResponsiblePartyType
	ClassSectionsType
	ClassServiceIdentificationType
	ClassServiceProviderType
	ClassServiceReferenceType
	ClassTelephoneType
	ClassUnNamedDomainType
	ClassValuesReferenceType
	ClassValueType
	ClassWGS84BoundingBoxType
	ClassCount
)

// AbstractReferenceBaseType features.
const (
	AbstractReferenceBaseType_Actuate FeatureID = iota
	AbstractReferenceBaseType_Arcrole
	AbstractReferenceBaseType_Href
	AbstractReferenceBaseType_Role
	AbstractReferenceBaseType_Show
	AbstractReferenceBaseType_Title
	AbstractReferenceBaseType_Type
	AbstractReferenceBaseType_FeatureCount
)

// AcceptFormatsType features.
const (
	AcceptFormatsType_OutputFormat FeatureID = iota
	AcceptFormatsType_FeatureCount
)

// AcceptVersionsType features.
const (
	AcceptVersionsType_Version FeatureID = iota
	AcceptVersionsType_FeatureCount
)

// AddressType features.
const (
	AddressType_DeliveryPoint FeatureID = iota
	AddressType_City
	AddressType_AdministrativeArea
	AddressType_PostalCode
	AddressType_Country
	AddressType_ElectronicMailAddress
	AddressType_FeatureCount
)

// AllowedValuesType features.
const (
	AllowedValuesType_Group FeatureID = iota
	AllowedValuesType_Value
	AllowedValuesType_Range
	AllowedValuesType_FeatureCount
)

// AnyValueType features.
const (
	AnyValueType_FeatureCount FeatureID = 0
)

// BasicIdentificationType features.
const (
	BasicIdentificationType_Identifier = DescriptionType_FeatureCount + iota
	BasicIdentificationType_Metadata
	BasicIdentificationType_FeatureCount
)

// BoundingBoxType features.
const (
	BoundingBoxType_LowerCorner FeatureID = iota
	BoundingBoxType_UpperCorner
	BoundingBoxType_Crs
	BoundingBoxType_Dimensions
	BoundingBoxType_FeatureCount
)

// CapabilitiesBaseType features.
const (
	CapabilitiesBaseType_ServiceIdentification FeatureID = iota
	CapabilitiesBaseType_ServiceProvider
	CapabilitiesBaseType_OperationsMetadata
	CapabilitiesBaseType_UpdateSequence
	CapabilitiesBaseType_Version
	CapabilitiesBaseType_FeatureCount
)

// CodeType features.
const (
	CodeType_Value FeatureID = iota
	CodeType_CodeSpace
	CodeType_FeatureCount
)

// ContactType features.
const (
	ContactType_Phone FeatureID = iota
	ContactType_Address
	ContactType_OnlineResource
	ContactType_HoursOfService
	ContactType_ContactInstructions
	ContactType_FeatureCount
)

// ContentsBaseType features.
const (
	ContentsBaseType_DatasetDescriptionSummary FeatureID = iota
	ContentsBaseType_OtherSource
	ContentsBaseType_FeatureCount
)

// DatasetDescriptionSummaryBaseType features.
const (
	DatasetDescriptionSummaryBaseType_WGS84BoundingBox = DescriptionType_FeatureCount + iota
	DatasetDescriptionSummaryBaseType_Identifier
	DatasetDescriptionSummaryBaseType_BoundingBoxGroup
	DatasetDescriptionSummaryBaseType_BoundingBox
	DatasetDescriptionSummaryBaseType_Metadata
	DatasetDescriptionSummaryBaseType_DatasetDescriptionSummary
	DatasetDescriptionSummaryBaseType_FeatureCount
)

// DCPType features.
const (
	DCPType_HTTP FeatureID = iota
	DCPType_FeatureCount
)

// DescriptionType features.
const (
	DescriptionType_Title FeatureID = iota
	DescriptionType_Abstract
	DescriptionType_Keywords
	DescriptionType_FeatureCount
)

// DocumentRoot features.
const (
	DocumentRoot_Mixed FeatureID = iota
	DocumentRoot_XMLNSPrefixMap
	DocumentRoot_XSISchemaLocation
	DocumentRoot_Abstract
	DocumentRoot_AbstractMetaData
	DocumentRoot_AbstractReferenceBase
	DocumentRoot_AccessConstraints
	DocumentRoot_AllowedValues
	DocumentRoot_AnyValue
	DocumentRoot_AvailableCRS
	DocumentRoot_BoundingBox
	DocumentRoot_ContactInfo
	DocumentRoot_DatasetDescriptionSummary
	DocumentRoot_DataType
	DocumentRoot_DCP
	DocumentRoot_DefaultValue
	DocumentRoot_Exception
	DocumentRoot_ExceptionReport
	DocumentRoot_ExtendedCapabilities
	DocumentRoot_Fees
	DocumentRoot_GetCapabilities
	DocumentRoot_GetResourceByID
	DocumentRoot_HTTP
	DocumentRoot_Identifier
	DocumentRoot_IndividualName
	DocumentRoot_InputData
	DocumentRoot_Keywords
	DocumentRoot_Language
	DocumentRoot_Manifest
	DocumentRoot_MaximumValue
	DocumentRoot_Meaning
	DocumentRoot_Metadata
	DocumentRoot_MinimumValue
	DocumentRoot_NoValues
	DocumentRoot_Operation
	DocumentRoot_OperationResponse
	DocumentRoot_OperationsMetadata
	DocumentRoot_OrganisationName
	DocumentRoot_OtherSource
	DocumentRoot_OutputFormat
	DocumentRoot_PointOfContact
	DocumentRoot_PositionName
	DocumentRoot_Range
	DocumentRoot_Reference
	DocumentRoot_ReferenceGroup
	DocumentRoot_ReferenceSystem
	DocumentRoot_Resource
	DocumentRoot_Role
	DocumentRoot_ServiceIdentification
	DocumentRoot_ServiceProvider
	DocumentRoot_ServiceReference
	DocumentRoot_Spacing
	DocumentRoot_SupportedCRS
	DocumentRoot_Title
	DocumentRoot_UOM
	DocumentRoot_Value
	DocumentRoot_ValuesReference
	DocumentRoot_WGS84BoundingBox
	DocumentRoot_RangeClosure
	DocumentRoot_ReferenceAttribute
	DocumentRoot_FeatureCount
)

// DomainMetadataType features.
const (
	DomainMetadataType_Value FeatureID = iota
	DomainMetadataType_Reference
	DomainMetadataType_FeatureCount
)

// DomainType features.
const (
	DomainType_Name = UnNamedDomainType_FeatureCount + iota
	DomainType_FeatureCount
)

// ExceptionReportType features.
const (
	ExceptionReportType_Exception FeatureID = iota
	ExceptionReportType_Lang
	ExceptionReportType_Version
	ExceptionReportType_FeatureCount
)

// ExceptionType features.
const (
	ExceptionType_ExceptionText FeatureID = iota
	ExceptionType_ExceptionCode
	ExceptionType_Locator
	ExceptionType_FeatureCount
)

// GetCapabilitiesType features.
const (
	GetCapabilitiesType_AcceptVersions FeatureID = iota
	GetCapabilitiesType_Sections
	GetCapabilitiesType_AcceptFormats
	GetCapabilitiesType_UpdateSequence
	GetCapabilitiesType_BaseUrl
	GetCapabilitiesType_Namespace
	GetCapabilitiesType_ExtendedProperties
	GetCapabilitiesType_FeatureCount
)

// GetResourceByIdType features.
const (
	GetResourceByIdType_ResourceID FeatureID = iota
	GetResourceByIdType_OutputFormat
	GetResourceByIdType_Service
	GetResourceByIdType_Version
	GetResourceByIdType_FeatureCount
)

// HTTPType features.
const (
	HTTPType_Group FeatureID = iota
	HTTPType_Get
	HTTPType_Post
	HTTPType_FeatureCount
)

// IdentificationType features.
const (
	IdentificationType_BoundingBoxGroup = BasicIdentificationType_FeatureCount + iota
	IdentificationType_BoundingBox
	IdentificationType_OutputFormat
	IdentificationType_AvailableCRSGroup
	IdentificationType_AvailableCRS
	IdentificationType_FeatureCount
)

// KeywordsType features.
const (
	KeywordsType_Keyword FeatureID = iota
	KeywordsType_Type
	KeywordsType_FeatureCount
)

// LanguageStringType features.
const (
	LanguageStringType_Value FeatureID = iota
	LanguageStringType_Lang
	LanguageStringType_FeatureCount
)

// ManifestType features.
const (
	ManifestType_ReferenceGroup = BasicIdentificationType_FeatureCount + iota
	ManifestType_FeatureCount
)

// MetadataType features.
const (
	MetadataType_AbstractMetaData FeatureID = iota
	MetadataType_Actuate
	MetadataType_Arcrole
	MetadataType_Href
	MetadataType_Role
	MetadataType_Show
	MetadataType_Title
	MetadataType_Type
	MetadataType_About
	MetadataType_FeatureCount
)

// NoValuesType features.
const (
	NoValuesType_FeatureCount FeatureID = 0
)

// OnlineResourceType features.
const (
	OnlineResourceType_Actuate FeatureID = iota
	OnlineResourceType_Arcrole
	OnlineResourceType_Href
	OnlineResourceType_Role
	OnlineResourceType_Show
	OnlineResourceType_Title
	OnlineResourceType_Type
	OnlineResourceType_FeatureCount
)

// OperationsMetadataType features.
const (
	OperationsMetadataType_Operation FeatureID = iota
	OperationsMetadataType_Parameter
	OperationsMetadataType_Constraint
	OperationsMetadataType_ExtendedCapabilities
	OperationsMetadataType_FeatureCount
)

// OperationType features.
const (
	OperationType_DCP FeatureID = iota
	OperationType_Parameter
	OperationType_Constraint
	OperationType_Metadata
	OperationType_Name
	OperationType_FeatureCount
)

// RangeType features.
const (
	RangeType_MinimumValue FeatureID = iota
	RangeType_MaximumValue
	RangeType_Spacing
	RangeType_RangeClosure
	RangeType_FeatureCount
)

// ReferenceGroupType features.
const (
	ReferenceGroupType_AbstractReferenceBaseGroup = BasicIdentificationType_FeatureCount + iota
	ReferenceGroupType_AbstractReferenceBase
	ReferenceGroupType_FeatureCount
)

// ReferenceType features.
const (
	ReferenceType_Identifier = AbstractReferenceBaseType_FeatureCount + iota
	ReferenceType_Abstract
	ReferenceType_Format
	ReferenceType_Metadata
	ReferenceType_FeatureCount
)

// RequestMethodType features.
const (
	RequestMethodType_Constraint = OnlineResourceType_FeatureCount + iota
	RequestMethodType_FeatureCount
)

// ResponsiblePartySubsetType features.
const (
	ResponsiblePartySubsetType_IndividualName FeatureID = iota
	ResponsiblePartySubsetType_PositionName
	ResponsiblePartySubsetType_ContactInfo
	ResponsiblePartySubsetType_Role
	ResponsiblePartySubsetType_FeatureCount
)

// ResponsiblePartyType features.
const (
	ResponsiblePartyType_IndividualName FeatureID = iota
	ResponsiblePartyType_OrganisationName
	ResponsiblePartyType_PositionName
	ResponsiblePartyType_ContactInfo
	ResponsiblePartyType_Role
	ResponsiblePartyType_FeatureCount
)

// SectionsType features.
const (
	SectionsType_Section FeatureID = iota
	SectionsType_FeatureCount
)

// ServiceIdentificationType features.
const (
	ServiceIdentificationType_ServiceType = DescriptionType_FeatureCount + iota
	ServiceIdentificationType_ServiceTypeVersion
	ServiceIdentificationType_Profile
	ServiceIdentificationType_Fees
	ServiceIdentificationType_AccessConstraints
	ServiceIdentificationType_FeatureCount
)

// ServiceProviderType features.
const (
	ServiceProviderType_ProviderName FeatureID = iota
	ServiceProviderType_ProviderSite
	ServiceProviderType_ServiceContact
	ServiceProviderType_FeatureCount
)

// ServiceReferenceType features.
const (
	ServiceReferenceType_RequestMessage = ReferenceType_FeatureCount + iota
	ServiceReferenceType_RequestMessageReference
	ServiceReferenceType_FeatureCount
)

// TelephoneType features.
const (
	TelephoneType_Voice FeatureID = iota
	TelephoneType_Facsimile
	TelephoneType_FeatureCount
)

// UnNamedDomainType features.
const (
	UnNamedDomainType_AllowedValues FeatureID = iota
	UnNamedDomainType_AnyValue
	UnNamedDomainType_NoValues
	UnNamedDomainType_ValuesReference
	UnNamedDomainType_DefaultValue
	UnNamedDomainType_Meaning
	UnNamedDomainType_DataType
	UnNamedDomainType_UOM
	UnNamedDomainType_ReferenceSystem
	UnNamedDomainType_Metadata
	UnNamedDomainType_FeatureCount
)

// ValuesReferenceType features.
const (
	ValuesReferenceType_Value FeatureID = iota
	ValuesReferenceType_Reference
	ValuesReferenceType_FeatureCount
)

// ValueType features.
const (
	ValueType_Value FeatureID = iota
	ValueType_FeatureCount
)

// WGS84BoundingBoxType features.
const (
	WGS84BoundingBoxType_FeatureCount = BoundingBoxType_FeatureCount + 0
)
