package ows11

import "reflect"

func classDefs() []classDef {
	return []classDef{
		{
			id:     ClassAbstractReferenceBaseType,
			name:   "AbstractReferenceBaseType",
			super:  noClass,
			goType: reflect.TypeOf(AbstractReferenceBaseType{}),
			features: []*Feature{
				attribute(AbstractReferenceBaseType_Actuate, XLinkNamespace, "actuate", "string", 0),
				attribute(AbstractReferenceBaseType_Arcrole, XLinkNamespace, "arcrole", "string", 0),
				attribute(AbstractReferenceBaseType_Href, XLinkNamespace, "href", "string", 1),
				attribute(AbstractReferenceBaseType_Role, XLinkNamespace, "role", "string", 0),
				attribute(AbstractReferenceBaseType_Show, XLinkNamespace, "show", "string", 0),
				attribute(AbstractReferenceBaseType_Title, XLinkNamespace, "title", "string", 0),
				attribute(AbstractReferenceBaseType_Type, XLinkNamespace, "type", "string", 0).withField("XLinkType").unsettable("simple", "Type"),
			},
		},
		{
			id:     ClassAcceptFormatsType,
			name:   "AcceptFormatsType",
			super:  noClass,
			goType: reflect.TypeOf(AcceptFormatsType{}),
			features: []*Feature{
				element(AcceptFormatsType_OutputFormat, "OutputFormat", "MimeType", 0, Unbounded),
			},
		},
		{
			id:     ClassAcceptVersionsType,
			name:   "AcceptVersionsType",
			super:  noClass,
			goType: reflect.TypeOf(AcceptVersionsType{}),
			features: []*Feature{
				element(AcceptVersionsType_Version, "Version", "VersionType", 1, Unbounded),
			},
		},
		{
			id:     ClassAddressType,
			name:   "AddressType",
			super:  noClass,
			goType: reflect.TypeOf(AddressType{}),
			features: []*Feature{
				element(AddressType_DeliveryPoint, "DeliveryPoint", "string", 0, Unbounded),
				element(AddressType_City, "City", "string", 0, 1),
				element(AddressType_AdministrativeArea, "AdministrativeArea", "string", 0, 1),
				element(AddressType_PostalCode, "PostalCode", "string", 0, 1),
				element(AddressType_Country, "Country", "string", 0, 1),
				element(AddressType_ElectronicMailAddress, "ElectronicMailAddress", "string", 0, Unbounded),
			},
		},
		{
			id:     ClassAllowedValuesType,
			name:   "AllowedValuesType",
			super:  noClass,
			goType: reflect.TypeOf(AllowedValuesType{}),
			features: []*Feature{
				group(AllowedValuesType_Group, "group", 0, GroupMember{"Value", "ValueType"}, GroupMember{"Range", "RangeType"}),
				view(AllowedValuesType_Value, "Value", "ValueType", "group", 0),
				view(AllowedValuesType_Range, "Range", "RangeType", "group", 0),
			},
		},
		{
			id:     ClassAnyValueType,
			name:   "AnyValueType",
			super:  noClass,
			goType: reflect.TypeOf(AnyValueType{}),
		},
		{
			id:     ClassBasicIdentificationType,
			name:   "BasicIdentificationType",
			super:  ClassDescriptionType,
			goType: reflect.TypeOf(BasicIdentificationType{}),
			features: []*Feature{
				element(BasicIdentificationType_Identifier, "Identifier", "CodeType", 0, 1),
				element(BasicIdentificationType_Metadata, "Metadata", "MetadataType", 0, Unbounded),
			},
		},
		{
			id:     ClassBoundingBoxType,
			name:   "BoundingBoxType",
			super:  noClass,
			goType: reflect.TypeOf(BoundingBoxType{}),
			features: []*Feature{
				element(BoundingBoxType_LowerCorner, "LowerCorner", "PositionType", 1, 1),
				element(BoundingBoxType_UpperCorner, "UpperCorner", "PositionType", 1, 1),
				attribute(BoundingBoxType_Crs, "", "crs", "anyURI", 0).withField("CRS"),
				attribute(BoundingBoxType_Dimensions, "", "dimensions", "positiveInteger", 0),
			},
		},
		{
			id:     ClassCapabilitiesBaseType,
			name:   "CapabilitiesBaseType",
			super:  noClass,
			goType: reflect.TypeOf(CapabilitiesBaseType{}),
			features: []*Feature{
				element(CapabilitiesBaseType_ServiceIdentification, "ServiceIdentification", "ServiceIdentificationType", 0, 1),
				element(CapabilitiesBaseType_ServiceProvider, "ServiceProvider", "ServiceProviderType", 0, 1),
				element(CapabilitiesBaseType_OperationsMetadata, "OperationsMetadata", "OperationsMetadataType", 0, 1),
				attribute(CapabilitiesBaseType_UpdateSequence, "", "updateSequence", "UpdateSequenceType", 0),
				attribute(CapabilitiesBaseType_Version, "", "version", "VersionType", 1),
			},
		},
		{
			id:     ClassCodeType,
			name:   "CodeType",
			super:  noClass,
			goType: reflect.TypeOf(CodeType{}),
			features: []*Feature{
				simpleContent(CodeType_Value, "string"),
				attribute(CodeType_CodeSpace, "", "codeSpace", "anyURI", 0),
			},
		},
		{
			id:     ClassContactType,
			name:   "ContactType",
			super:  noClass,
			goType: reflect.TypeOf(ContactType{}),
			features: []*Feature{
				element(ContactType_Phone, "Phone", "TelephoneType", 0, 1),
				element(ContactType_Address, "Address", "AddressType", 0, 1),
				element(ContactType_OnlineResource, "OnlineResource", "OnlineResourceType", 0, 1),
				element(ContactType_HoursOfService, "HoursOfService", "string", 0, 1),
				element(ContactType_ContactInstructions, "ContactInstructions", "string", 0, 1),
			},
		},
		{
			id:     ClassContentsBaseType,
			name:   "ContentsBaseType",
			super:  noClass,
			goType: reflect.TypeOf(ContentsBaseType{}),
			features: []*Feature{
				element(ContentsBaseType_DatasetDescriptionSummary, "DatasetDescriptionSummary", "DatasetDescriptionSummaryBaseType", 0, Unbounded),
				element(ContentsBaseType_OtherSource, "OtherSource", "MetadataType", 0, Unbounded),
			},
		},
		{
			id:     ClassDatasetDescriptionSummaryBaseType,
			name:   "DatasetDescriptionSummaryBaseType",
			super:  ClassDescriptionType,
			goType: reflect.TypeOf(DatasetDescriptionSummaryBaseType{}),
			features: []*Feature{
				element(DatasetDescriptionSummaryBaseType_WGS84BoundingBox, "WGS84BoundingBox", "WGS84BoundingBoxType", 0, Unbounded),
				element(DatasetDescriptionSummaryBaseType_Identifier, "Identifier", "CodeType", 1, 1),
				group(DatasetDescriptionSummaryBaseType_BoundingBoxGroup, "boundingBoxGroup", 0, GroupMember{"BoundingBox", "BoundingBoxType"}, GroupMember{"WGS84BoundingBox", "WGS84BoundingBoxType"}),
				view(DatasetDescriptionSummaryBaseType_BoundingBox, "BoundingBox", "BoundingBoxType", "boundingBoxGroup", 0),
				element(DatasetDescriptionSummaryBaseType_Metadata, "Metadata", "MetadataType", 0, Unbounded),
				element(DatasetDescriptionSummaryBaseType_DatasetDescriptionSummary, "DatasetDescriptionSummary", "DatasetDescriptionSummaryBaseType", 0, Unbounded),
			},
		},
		{
			id:     ClassDCPType,
			name:   "DCPType",
			super:  noClass,
			goType: reflect.TypeOf(DCPType{}),
			features: []*Feature{
				element(DCPType_HTTP, "HTTP", "HTTPType", 0, 1),
			},
		},
		{
			id:     ClassDescriptionType,
			name:   "DescriptionType",
			super:  noClass,
			goType: reflect.TypeOf(DescriptionType{}),
			features: []*Feature{
				element(DescriptionType_Title, "Title", "LanguageStringType", 0, Unbounded),
				element(DescriptionType_Abstract, "Abstract", "LanguageStringType", 0, Unbounded),
				element(DescriptionType_Keywords, "Keywords", "KeywordsType", 0, Unbounded),
			},
		},
		{
			id:     ClassDocumentRoot,
			name:   "DocumentRoot",
			super:  noClass,
			goType: reflect.TypeOf(DocumentRoot{}),
			features: []*Feature{
				mixed(DocumentRoot_Mixed, "mixed"),
				stringMap(DocumentRoot_XMLNSPrefixMap, "xMLNSPrefixMap"),
				stringMap(DocumentRoot_XSISchemaLocation, "xSISchemaLocation"),
				globalElement(DocumentRoot_Abstract, "Abstract", "LanguageStringType"),
				globalElement(DocumentRoot_AbstractMetaData, "AbstractMetaData", "AnyElement"),
				globalElement(DocumentRoot_AbstractReferenceBase, "AbstractReferenceBase", "AbstractReferenceBaseType"),
				globalElement(DocumentRoot_AccessConstraints, "AccessConstraints", "string"),
				globalElement(DocumentRoot_AllowedValues, "AllowedValues", "AllowedValuesType"),
				globalElement(DocumentRoot_AnyValue, "AnyValue", "AnyValueType"),
				globalElement(DocumentRoot_AvailableCRS, "AvailableCRS", "anyURI"),
				globalElement(DocumentRoot_BoundingBox, "BoundingBox", "BoundingBoxType"),
				globalElement(DocumentRoot_ContactInfo, "ContactInfo", "ContactType"),
				globalElement(DocumentRoot_DatasetDescriptionSummary, "DatasetDescriptionSummary", "DatasetDescriptionSummaryBaseType"),
				globalElement(DocumentRoot_DataType, "DataType", "DomainMetadataType"),
				globalElement(DocumentRoot_DCP, "DCP", "DCPType"),
				globalElement(DocumentRoot_DefaultValue, "DefaultValue", "ValueType"),
				globalElement(DocumentRoot_Exception, "Exception", "ExceptionType"),
				globalElement(DocumentRoot_ExceptionReport, "ExceptionReport", "ExceptionReportType"),
				globalElement(DocumentRoot_ExtendedCapabilities, "ExtendedCapabilities", "AnyElement"),
				globalElement(DocumentRoot_Fees, "Fees", "string"),
				globalElement(DocumentRoot_GetCapabilities, "GetCapabilities", "GetCapabilitiesType"),
				globalElement(DocumentRoot_GetResourceByID, "GetResourceByID", "GetResourceByIdType"),
				globalElement(DocumentRoot_HTTP, "HTTP", "HTTPType"),
				globalElement(DocumentRoot_Identifier, "Identifier", "CodeType"),
				globalElement(DocumentRoot_IndividualName, "IndividualName", "string"),
				globalElement(DocumentRoot_InputData, "InputData", "ManifestType"),
				globalElement(DocumentRoot_Keywords, "Keywords", "KeywordsType"),
				globalElement(DocumentRoot_Language, "Language", "string"),
				globalElement(DocumentRoot_Manifest, "Manifest", "ManifestType"),
				globalElement(DocumentRoot_MaximumValue, "MaximumValue", "ValueType"),
				globalElement(DocumentRoot_Meaning, "Meaning", "DomainMetadataType"),
				globalElement(DocumentRoot_Metadata, "Metadata", "MetadataType"),
				globalElement(DocumentRoot_MinimumValue, "MinimumValue", "ValueType"),
				globalElement(DocumentRoot_NoValues, "NoValues", "NoValuesType"),
				globalElement(DocumentRoot_Operation, "Operation", "OperationType"),
				globalElement(DocumentRoot_OperationResponse, "OperationResponse", "ManifestType"),
				globalElement(DocumentRoot_OperationsMetadata, "OperationsMetadata", "OperationsMetadataType"),
				globalElement(DocumentRoot_OrganisationName, "OrganisationName", "string"),
				globalElement(DocumentRoot_OtherSource, "OtherSource", "MetadataType"),
				globalElement(DocumentRoot_OutputFormat, "OutputFormat", "MimeType"),
				globalElement(DocumentRoot_PointOfContact, "PointOfContact", "ResponsiblePartyType"),
				globalElement(DocumentRoot_PositionName, "PositionName", "string"),
				globalElement(DocumentRoot_Range, "Range", "RangeType"),
				globalElement(DocumentRoot_Reference, "Reference", "ReferenceType"),
				globalElement(DocumentRoot_ReferenceGroup, "ReferenceGroup", "ReferenceGroupType"),
				globalElement(DocumentRoot_ReferenceSystem, "ReferenceSystem", "DomainMetadataType"),
				globalElement(DocumentRoot_Resource, "Resource", "AnyElement"),
				globalElement(DocumentRoot_Role, "Role", "CodeType"),
				globalElement(DocumentRoot_ServiceIdentification, "ServiceIdentification", "ServiceIdentificationType"),
				globalElement(DocumentRoot_ServiceProvider, "ServiceProvider", "ServiceProviderType"),
				globalElement(DocumentRoot_ServiceReference, "ServiceReference", "ServiceReferenceType"),
				globalElement(DocumentRoot_Spacing, "Spacing", "ValueType"),
				globalElement(DocumentRoot_SupportedCRS, "SupportedCRS", "anyURI"),
				globalElement(DocumentRoot_Title, "Title", "LanguageStringType"),
				globalElement(DocumentRoot_UOM, "UOM", "DomainMetadataType"),
				globalElement(DocumentRoot_Value, "Value", "ValueType"),
				globalElement(DocumentRoot_ValuesReference, "ValuesReference", "ValuesReferenceType"),
				globalElement(DocumentRoot_WGS84BoundingBox, "WGS84BoundingBox", "WGS84BoundingBoxType"),
				attribute(DocumentRoot_RangeClosure, Namespace, "rangeClosure", "RangeClosureType", 0).withField("Closure").unsettable("closed", "RangeClosure"),
				attribute(DocumentRoot_ReferenceAttribute, Namespace, "reference", "anyURI", 0).named("referenceAttribute").withField("ReferenceAttr"),
			},
		},
		{
			id:     ClassDomainMetadataType,
			name:   "DomainMetadataType",
			super:  noClass,
			goType: reflect.TypeOf(DomainMetadataType{}),
			features: []*Feature{
				simpleContent(DomainMetadataType_Value, "string"),
				attribute(DomainMetadataType_Reference, Namespace, "reference", "anyURI", 0),
			},
		},
		{
			id:     ClassDomainType,
			name:   "DomainType",
			super:  ClassUnNamedDomainType,
			goType: reflect.TypeOf(DomainType{}),
			features: []*Feature{
				attribute(DomainType_Name, "", "name", "string", 1),
			},
		},
		{
			id:     ClassExceptionReportType,
			name:   "ExceptionReportType",
			super:  noClass,
			goType: reflect.TypeOf(ExceptionReportType{}),
			features: []*Feature{
				element(ExceptionReportType_Exception, "Exception", "ExceptionType", 1, Unbounded),
				attribute(ExceptionReportType_Lang, XMLNamespace, "lang", "language", 0),
				attribute(ExceptionReportType_Version, "", "version", "VersionType", 1),
			},
		},
		{
			id:     ClassExceptionType,
			name:   "ExceptionType",
			super:  noClass,
			goType: reflect.TypeOf(ExceptionType{}),
			features: []*Feature{
				element(ExceptionType_ExceptionText, "ExceptionText", "string", 0, Unbounded),
				attribute(ExceptionType_ExceptionCode, "", "exceptionCode", "string", 1),
				attribute(ExceptionType_Locator, "", "locator", "string", 0),
			},
		},
		{
			id:     ClassGetCapabilitiesType,
			name:   "GetCapabilitiesType",
			super:  noClass,
			goType: reflect.TypeOf(GetCapabilitiesType{}),
			features: []*Feature{
				element(GetCapabilitiesType_AcceptVersions, "AcceptVersions", "AcceptVersionsType", 0, 1),
				element(GetCapabilitiesType_Sections, "Sections", "SectionsType", 0, 1),
				element(GetCapabilitiesType_AcceptFormats, "AcceptFormats", "AcceptFormatsType", 0, 1),
				attribute(GetCapabilitiesType_UpdateSequence, "", "updateSequence", "UpdateSequenceType", 0),
				transient(GetCapabilitiesType_BaseUrl, "baseUrl", "string").withField("BaseURL"),
				transient(GetCapabilitiesType_Namespace, "namespace", "string"),
				transient(GetCapabilitiesType_ExtendedProperties, "extendedProperties", "Map"),
			},
		},
		{
			id:     ClassGetResourceByIdType,
			name:   "GetResourceByIdType",
			super:  noClass,
			goType: reflect.TypeOf(GetResourceByIdType{}),
			features: []*Feature{
				element(GetResourceByIdType_ResourceID, "ResourceID", "anyURI", 0, Unbounded),
				element(GetResourceByIdType_OutputFormat, "OutputFormat", "MimeType", 0, 1),
				attribute(GetResourceByIdType_Service, "", "service", "ServiceType", 1),
				attribute(GetResourceByIdType_Version, "", "version", "VersionType", 1),
			},
		},
		{
			id:     ClassHTTPType,
			name:   "HTTPType",
			super:  noClass,
			goType: reflect.TypeOf(HTTPType{}),
			features: []*Feature{
				group(HTTPType_Group, "group", 0, GroupMember{"Get", "RequestMethodType"}, GroupMember{"Post", "RequestMethodType"}),
				view(HTTPType_Get, "Get", "RequestMethodType", "group", 0),
				view(HTTPType_Post, "Post", "RequestMethodType", "group", 0),
			},
		},
		{
			id:     ClassIdentificationType,
			name:   "IdentificationType",
			super:  ClassBasicIdentificationType,
			goType: reflect.TypeOf(IdentificationType{}),
			features: []*Feature{
				group(IdentificationType_BoundingBoxGroup, "boundingBoxGroup", 0, GroupMember{"BoundingBox", "BoundingBoxType"}, GroupMember{"WGS84BoundingBox", "WGS84BoundingBoxType"}),
				view(IdentificationType_BoundingBox, "BoundingBox", "BoundingBoxType", "boundingBoxGroup", 0),
				element(IdentificationType_OutputFormat, "OutputFormat", "MimeType", 0, Unbounded),
				group(IdentificationType_AvailableCRSGroup, "availableCRSGroup", 0, GroupMember{"AvailableCRS", "anyURI"}, GroupMember{"SupportedCRS", "anyURI"}),
				view(IdentificationType_AvailableCRS, "AvailableCRS", "anyURI", "availableCRSGroup", 0),
			},
		},
		{
			id:     ClassKeywordsType,
			name:   "KeywordsType",
			super:  noClass,
			goType: reflect.TypeOf(KeywordsType{}),
			features: []*Feature{
				element(KeywordsType_Keyword, "Keyword", "LanguageStringType", 1, Unbounded),
				element(KeywordsType_Type, "Type", "CodeType", 0, 1),
			},
		},
		{
			id:     ClassLanguageStringType,
			name:   "LanguageStringType",
			super:  noClass,
			goType: reflect.TypeOf(LanguageStringType{}),
			features: []*Feature{
				simpleContent(LanguageStringType_Value, "string"),
				attribute(LanguageStringType_Lang, XMLNamespace, "lang", "language", 0),
			},
		},
		{
			id:     ClassManifestType,
			name:   "ManifestType",
			super:  ClassBasicIdentificationType,
			goType: reflect.TypeOf(ManifestType{}),
			features: []*Feature{
				element(ManifestType_ReferenceGroup, "ReferenceGroup", "ReferenceGroupType", 1, Unbounded),
			},
		},
		{
			id:     ClassMetadataType,
			name:   "MetadataType",
			super:  noClass,
			goType: reflect.TypeOf(MetadataType{}),
			features: []*Feature{
				wildcard(MetadataType_AbstractMetaData, "abstractMetaData", ""),
				attribute(MetadataType_Actuate, XLinkNamespace, "actuate", "string", 0),
				attribute(MetadataType_Arcrole, XLinkNamespace, "arcrole", "string", 0),
				attribute(MetadataType_Href, XLinkNamespace, "href", "string", 0),
				attribute(MetadataType_Role, XLinkNamespace, "role", "string", 0),
				attribute(MetadataType_Show, XLinkNamespace, "show", "string", 0),
				attribute(MetadataType_Title, XLinkNamespace, "title", "string", 0),
				attribute(MetadataType_Type, XLinkNamespace, "type", "string", 0),
				attribute(MetadataType_About, "", "about", "anyURI", 0),
			},
		},
		{
			id:     ClassNoValuesType,
			name:   "NoValuesType",
			super:  noClass,
			goType: reflect.TypeOf(NoValuesType{}),
		},
		{
			id:     ClassOnlineResourceType,
			name:   "OnlineResourceType",
			super:  noClass,
			goType: reflect.TypeOf(OnlineResourceType{}),
			features: []*Feature{
				attribute(OnlineResourceType_Actuate, XLinkNamespace, "actuate", "string", 0),
				attribute(OnlineResourceType_Arcrole, XLinkNamespace, "arcrole", "string", 0),
				attribute(OnlineResourceType_Href, XLinkNamespace, "href", "string", 0),
				attribute(OnlineResourceType_Role, XLinkNamespace, "role", "string", 0),
				attribute(OnlineResourceType_Show, XLinkNamespace, "show", "string", 0),
				attribute(OnlineResourceType_Title, XLinkNamespace, "title", "string", 0),
				attribute(OnlineResourceType_Type, XLinkNamespace, "type", "string", 0),
			},
		},
		{
			id:     ClassOperationsMetadataType,
			name:   "OperationsMetadataType",
			super:  noClass,
			goType: reflect.TypeOf(OperationsMetadataType{}),
			features: []*Feature{
				element(OperationsMetadataType_Operation, "Operation", "OperationType", 2, Unbounded),
				element(OperationsMetadataType_Parameter, "Parameter", "DomainType", 0, Unbounded),
				element(OperationsMetadataType_Constraint, "Constraint", "DomainType", 0, Unbounded),
				wildcard(OperationsMetadataType_ExtendedCapabilities, "extendedCapabilities", "ExtendedCapabilities"),
			},
		},
		{
			id:     ClassOperationType,
			name:   "OperationType",
			super:  noClass,
			goType: reflect.TypeOf(OperationType{}),
			features: []*Feature{
				element(OperationType_DCP, "DCP", "DCPType", 1, Unbounded),
				element(OperationType_Parameter, "Parameter", "DomainType", 0, Unbounded),
				element(OperationType_Constraint, "Constraint", "DomainType", 0, Unbounded),
				element(OperationType_Metadata, "Metadata", "MetadataType", 0, Unbounded),
				attribute(OperationType_Name, "", "name", "string", 1),
			},
		},
		{
			id:     ClassRangeType,
			name:   "RangeType",
			super:  noClass,
			goType: reflect.TypeOf(RangeType{}),
			features: []*Feature{
				element(RangeType_MinimumValue, "MinimumValue", "ValueType", 0, 1),
				element(RangeType_MaximumValue, "MaximumValue", "ValueType", 0, 1),
				element(RangeType_Spacing, "Spacing", "ValueType", 0, 1),
				attribute(RangeType_RangeClosure, Namespace, "rangeClosure", "RangeClosureType", 0).withField("Closure").unsettable("closed", "RangeClosure"),
			},
		},
		{
			id:     ClassReferenceGroupType,
			name:   "ReferenceGroupType",
			super:  ClassBasicIdentificationType,
			goType: reflect.TypeOf(ReferenceGroupType{}),
			features: []*Feature{
				group(ReferenceGroupType_AbstractReferenceBaseGroup, "abstractReferenceBaseGroup", 1, GroupMember{"Reference", "ReferenceType"}, GroupMember{"ServiceReference", "ServiceReferenceType"}),
				view(ReferenceGroupType_AbstractReferenceBase, "AbstractReferenceBase", "AbstractReferenceBaseType", "abstractReferenceBaseGroup", 1),
			},
		},
		{
			id:     ClassReferenceType,
			name:   "ReferenceType",
			super:  ClassAbstractReferenceBaseType,
			goType: reflect.TypeOf(ReferenceType{}),
			features: []*Feature{
				element(ReferenceType_Identifier, "Identifier", "CodeType", 0, 1),
				element(ReferenceType_Abstract, "Abstract", "LanguageStringType", 0, Unbounded),
				element(ReferenceType_Format, "Format", "MimeType", 0, 1),
				element(ReferenceType_Metadata, "Metadata", "MetadataType", 0, Unbounded),
			},
		},
		{
			id:     ClassRequestMethodType,
			name:   "RequestMethodType",
			super:  ClassOnlineResourceType,
			goType: reflect.TypeOf(RequestMethodType{}),
			features: []*Feature{
				element(RequestMethodType_Constraint, "Constraint", "DomainType", 0, Unbounded),
			},
		},
		{
			id:     ClassResponsiblePartySubsetType,
			name:   "ResponsiblePartySubsetType",
			super:  noClass,
			goType: reflect.TypeOf(ResponsiblePartySubsetType{}),
			features: []*Feature{
				element(ResponsiblePartySubsetType_IndividualName, "IndividualName", "string", 0, 1),
				element(ResponsiblePartySubsetType_PositionName, "PositionName", "string", 0, 1),
				element(ResponsiblePartySubsetType_ContactInfo, "ContactInfo", "ContactType", 0, 1),
				element(ResponsiblePartySubsetType_Role, "Role", "CodeType", 0, 1),
			},
		},
		{
			id:     ClassResponsiblePartyType,
			name:   "ResponsiblePartyType",
			super:  noClass,
			goType: reflect.TypeOf(ResponsiblePartyType{}),
			features: []*Feature{
				element(ResponsiblePartyType_IndividualName, "IndividualName", "string", 0, 1),
				element(ResponsiblePartyType_OrganisationName, "OrganisationName", "string", 0, 1),
				element(ResponsiblePartyType_PositionName, "PositionName", "string", 0, 1),
				element(ResponsiblePartyType_ContactInfo, "ContactInfo", "ContactType", 0, 1),
				element(ResponsiblePartyType_Role, "Role", "CodeType", 1, 1),
			},
		},
		{
			id:     ClassSectionsType,
			name:   "SectionsType",
			super:  noClass,
			goType: reflect.TypeOf(SectionsType{}),
			features: []*Feature{
				element(SectionsType_Section, "Section", "string", 0, Unbounded),
			},
		},
		{
			id:     ClassServiceIdentificationType,
			name:   "ServiceIdentificationType",
			super:  ClassDescriptionType,
			goType: reflect.TypeOf(ServiceIdentificationType{}),
			features: []*Feature{
				element(ServiceIdentificationType_ServiceType, "ServiceType", "CodeType", 1, 1),
				element(ServiceIdentificationType_ServiceTypeVersion, "ServiceTypeVersion", "VersionType", 1, Unbounded),
				element(ServiceIdentificationType_Profile, "Profile", "anyURI", 0, Unbounded),
				element(ServiceIdentificationType_Fees, "Fees", "string", 0, 1),
				element(ServiceIdentificationType_AccessConstraints, "AccessConstraints", "string", 0, Unbounded),
			},
		},
		{
			id:     ClassServiceProviderType,
			name:   "ServiceProviderType",
			super:  noClass,
			goType: reflect.TypeOf(ServiceProviderType{}),
			features: []*Feature{
				element(ServiceProviderType_ProviderName, "ProviderName", "string", 1, 1),
				element(ServiceProviderType_ProviderSite, "ProviderSite", "OnlineResourceType", 0, 1),
				element(ServiceProviderType_ServiceContact, "ServiceContact", "ResponsiblePartySubsetType", 1, 1),
			},
		},
		{
			id:     ClassServiceReferenceType,
			name:   "ServiceReferenceType",
			super:  ClassReferenceType,
			goType: reflect.TypeOf(ServiceReferenceType{}),
			features: []*Feature{
				wildcard(ServiceReferenceType_RequestMessage, "requestMessage", "RequestMessage"),
				element(ServiceReferenceType_RequestMessageReference, "RequestMessageReference", "anyURI", 0, 1),
			},
		},
		{
			id:     ClassTelephoneType,
			name:   "TelephoneType",
			super:  noClass,
			goType: reflect.TypeOf(TelephoneType{}),
			features: []*Feature{
				element(TelephoneType_Voice, "Voice", "string", 0, Unbounded),
				element(TelephoneType_Facsimile, "Facsimile", "string", 0, Unbounded),
			},
		},
		{
			id:     ClassUnNamedDomainType,
			name:   "UnNamedDomainType",
			super:  noClass,
			goType: reflect.TypeOf(UnNamedDomainType{}),
			features: []*Feature{
				element(UnNamedDomainType_AllowedValues, "AllowedValues", "AllowedValuesType", 0, 1),
				element(UnNamedDomainType_AnyValue, "AnyValue", "AnyValueType", 0, 1),
				element(UnNamedDomainType_NoValues, "NoValues", "NoValuesType", 0, 1),
				element(UnNamedDomainType_ValuesReference, "ValuesReference", "ValuesReferenceType", 0, 1),
				element(UnNamedDomainType_DefaultValue, "DefaultValue", "ValueType", 0, 1),
				element(UnNamedDomainType_Meaning, "Meaning", "DomainMetadataType", 0, 1),
				element(UnNamedDomainType_DataType, "DataType", "DomainMetadataType", 0, 1),
				element(UnNamedDomainType_UOM, "UOM", "DomainMetadataType", 0, 1),
				element(UnNamedDomainType_ReferenceSystem, "ReferenceSystem", "DomainMetadataType", 0, 1),
				element(UnNamedDomainType_Metadata, "Metadata", "MetadataType", 0, Unbounded),
			},
		},
		{
			id:     ClassValuesReferenceType,
			name:   "ValuesReferenceType",
			super:  noClass,
			goType: reflect.TypeOf(ValuesReferenceType{}),
			features: []*Feature{
				simpleContent(ValuesReferenceType_Value, "string"),
				attribute(ValuesReferenceType_Reference, Namespace, "reference", "anyURI", 1),
			},
		},
		{
			id:     ClassValueType,
			name:   "ValueType",
			super:  noClass,
			goType: reflect.TypeOf(ValueType{}),
			features: []*Feature{
				simpleContent(ValueType_Value, "string"),
			},
		},
		{
			id:     ClassWGS84BoundingBoxType,
			name:   "WGS84BoundingBoxType",
			super:  ClassBoundingBoxType,
			goType: reflect.TypeOf(WGS84BoundingBoxType{}),
			restrictions: map[FeatureID]string{
				BoundingBoxType_LowerCorner: "PositionType2D",
				BoundingBoxType_UpperCorner: "PositionType2D",
			},
		},
	}
}
