package ows11

func elementDefs() []*Element {
	return []*Element{
		{Name: "Abstract", Type: "LanguageStringType", Feature: DocumentRoot_Abstract, new: func() any { return new(LanguageStringType) }},
		{Name: "AbstractMetaData", Type: "AnyElement", Feature: DocumentRoot_AbstractMetaData, Abstract: true, new: func() any { return new(AnyElement) }},
		{Name: "AbstractReferenceBase", Type: "AbstractReferenceBaseType", Feature: DocumentRoot_AbstractReferenceBase, Abstract: true, new: func() any { return new(AbstractReferenceBaseType) }},
		{Name: "AccessConstraints", Type: "string", Feature: DocumentRoot_AccessConstraints, new: func() any { return new(string) }},
		{Name: "AllowedValues", Type: "AllowedValuesType", Feature: DocumentRoot_AllowedValues, new: func() any { return new(AllowedValuesType) }},
		{Name: "AnyValue", Type: "AnyValueType", Feature: DocumentRoot_AnyValue, new: func() any { return new(AnyValueType) }},
		{Name: "AvailableCRS", Type: "anyURI", Feature: DocumentRoot_AvailableCRS, new: func() any { return new(string) }},
		{Name: "BoundingBox", Type: "BoundingBoxType", Feature: DocumentRoot_BoundingBox, new: func() any { return new(BoundingBoxType) }},
		{Name: "ContactInfo", Type: "ContactType", Feature: DocumentRoot_ContactInfo, new: func() any { return new(ContactType) }},
		{Name: "DatasetDescriptionSummary", Type: "DatasetDescriptionSummaryBaseType", Feature: DocumentRoot_DatasetDescriptionSummary, new: func() any { return new(DatasetDescriptionSummaryBaseType) }},
		{Name: "DataType", Type: "DomainMetadataType", Feature: DocumentRoot_DataType, new: func() any { return new(DomainMetadataType) }},
		{Name: "DCP", Type: "DCPType", Feature: DocumentRoot_DCP, new: func() any { return new(DCPType) }},
		{Name: "DefaultValue", Type: "ValueType", Feature: DocumentRoot_DefaultValue, new: func() any { return new(ValueType) }},
		{Name: "Exception", Type: "ExceptionType", Feature: DocumentRoot_Exception, new: func() any { return new(ExceptionType) }},
		{Name: "ExceptionReport", Type: "ExceptionReportType", Feature: DocumentRoot_ExceptionReport, new: func() any { return new(ExceptionReportType) }},
		{Name: "ExtendedCapabilities", Type: "AnyElement", Feature: DocumentRoot_ExtendedCapabilities, new: func() any { return new(AnyElement) }},
		{Name: "Fees", Type: "string", Feature: DocumentRoot_Fees, new: func() any { return new(string) }},
		{Name: "GetCapabilities", Type: "GetCapabilitiesType", Feature: DocumentRoot_GetCapabilities, new: func() any { return new(GetCapabilitiesType) }},
		{Name: "GetResourceByID", Type: "GetResourceByIdType", Feature: DocumentRoot_GetResourceByID, new: func() any { return new(GetResourceByIdType) }},
		{Name: "HTTP", Type: "HTTPType", Feature: DocumentRoot_HTTP, new: func() any { return new(HTTPType) }},
		{Name: "Identifier", Type: "CodeType", Feature: DocumentRoot_Identifier, new: func() any { return new(CodeType) }},
		{Name: "IndividualName", Type: "string", Feature: DocumentRoot_IndividualName, new: func() any { return new(string) }},
		{Name: "InputData", Type: "ManifestType", Feature: DocumentRoot_InputData, SubstitutionGroup: "Manifest", new: func() any { return new(ManifestType) }},
		{Name: "Keywords", Type: "KeywordsType", Feature: DocumentRoot_Keywords, new: func() any { return new(KeywordsType) }},
		{Name: "Language", Type: "string", Feature: DocumentRoot_Language, new: func() any { return new(string) }},
		{Name: "Manifest", Type: "ManifestType", Feature: DocumentRoot_Manifest, new: func() any { return new(ManifestType) }},
		{Name: "MaximumValue", Type: "ValueType", Feature: DocumentRoot_MaximumValue, new: func() any { return new(ValueType) }},
		{Name: "Meaning", Type: "DomainMetadataType", Feature: DocumentRoot_Meaning, new: func() any { return new(DomainMetadataType) }},
		{Name: "Metadata", Type: "MetadataType", Feature: DocumentRoot_Metadata, new: func() any { return new(MetadataType) }},
		{Name: "MinimumValue", Type: "ValueType", Feature: DocumentRoot_MinimumValue, new: func() any { return new(ValueType) }},
		{Name: "NoValues", Type: "NoValuesType", Feature: DocumentRoot_NoValues, new: func() any { return new(NoValuesType) }},
		{Name: "Operation", Type: "OperationType", Feature: DocumentRoot_Operation, new: func() any { return new(OperationType) }},
		{Name: "OperationResponse", Type: "ManifestType", Feature: DocumentRoot_OperationResponse, SubstitutionGroup: "Manifest", new: func() any { return new(ManifestType) }},
		{Name: "OperationsMetadata", Type: "OperationsMetadataType", Feature: DocumentRoot_OperationsMetadata, new: func() any { return new(OperationsMetadataType) }},
		{Name: "OrganisationName", Type: "string", Feature: DocumentRoot_OrganisationName, new: func() any { return new(string) }},
		{Name: "OtherSource", Type: "MetadataType", Feature: DocumentRoot_OtherSource, new: func() any { return new(MetadataType) }},
		{Name: "OutputFormat", Type: "MimeType", Feature: DocumentRoot_OutputFormat, new: func() any { return new(MimeType) }},
		{Name: "PointOfContact", Type: "ResponsiblePartyType", Feature: DocumentRoot_PointOfContact, new: func() any { return new(ResponsiblePartyType) }},
		{Name: "PositionName", Type: "string", Feature: DocumentRoot_PositionName, new: func() any { return new(string) }},
		{Name: "Range", Type: "RangeType", Feature: DocumentRoot_Range, new: func() any { return new(RangeType) }},
		{Name: "Reference", Type: "ReferenceType", Feature: DocumentRoot_Reference, SubstitutionGroup: "AbstractReferenceBase", new: func() any { return new(ReferenceType) }},
		{Name: "ReferenceGroup", Type: "ReferenceGroupType", Feature: DocumentRoot_ReferenceGroup, new: func() any { return new(ReferenceGroupType) }},
		{Name: "ReferenceSystem", Type: "DomainMetadataType", Feature: DocumentRoot_ReferenceSystem, new: func() any { return new(DomainMetadataType) }},
		{Name: "Resource", Type: "AnyElement", Feature: DocumentRoot_Resource, new: func() any { return new(AnyElement) }},
		{Name: "Role", Type: "CodeType", Feature: DocumentRoot_Role, new: func() any { return new(CodeType) }},
		{Name: "ServiceIdentification", Type: "ServiceIdentificationType", Feature: DocumentRoot_ServiceIdentification, new: func() any { return new(ServiceIdentificationType) }},
		{Name: "ServiceProvider", Type: "ServiceProviderType", Feature: DocumentRoot_ServiceProvider, new: func() any { return new(ServiceProviderType) }},
		{Name: "ServiceReference", Type: "ServiceReferenceType", Feature: DocumentRoot_ServiceReference, SubstitutionGroup: "Reference", new: func() any { return new(ServiceReferenceType) }},
		{Name: "Spacing", Type: "ValueType", Feature: DocumentRoot_Spacing, new: func() any { return new(ValueType) }},
		{Name: "SupportedCRS", Type: "anyURI", Feature: DocumentRoot_SupportedCRS, SubstitutionGroup: "AvailableCRS", new: func() any { return new(string) }},
		{Name: "Title", Type: "LanguageStringType", Feature: DocumentRoot_Title, new: func() any { return new(LanguageStringType) }},
		{Name: "UOM", Type: "DomainMetadataType", Feature: DocumentRoot_UOM, new: func() any { return new(DomainMetadataType) }},
		{Name: "Value", Type: "ValueType", Feature: DocumentRoot_Value, new: func() any { return new(ValueType) }},
		{Name: "ValuesReference", Type: "ValuesReferenceType", Feature: DocumentRoot_ValuesReference, new: func() any { return new(ValuesReferenceType) }},
		{Name: "WGS84BoundingBox", Type: "WGS84BoundingBoxType", Feature: DocumentRoot_WGS84BoundingBox, SubstitutionGroup: "BoundingBox", new: func() any { return new(WGS84BoundingBoxType) }},
	}
}
