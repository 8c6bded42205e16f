package ows11

// Accessors of the global elements. A getter returns nil unless its
// element is the document root.

func (d *DocumentRoot) Abstract() *LanguageStringType {
	return rootElement[*LanguageStringType](d, "Abstract")
}

func (d *DocumentRoot) SetAbstract(v *LanguageStringType) {
	setRootElement(d, "Abstract", v)
}

func (d *DocumentRoot) AbstractMetaData() *AnyElement {
	return rootElement[*AnyElement](d, "AbstractMetaData")
}

func (d *DocumentRoot) SetAbstractMetaData(v *AnyElement) {
	setRootElement(d, "AbstractMetaData", v)
}

// AbstractReferenceBase returns the base of a Reference or
// ServiceReference root.
func (d *DocumentRoot) AbstractReferenceBase() *AbstractReferenceBaseType {
	if r, ok := d.root.Value.(ReferenceBase); ok && r != nil {
		return r.RefBase()
	}
	return nil
}

func (d *DocumentRoot) SetAbstractReferenceBase(v *AbstractReferenceBaseType) {
	setRootElement(d, "AbstractReferenceBase", v)
}

func (d *DocumentRoot) AccessConstraints() *string {
	return rootElement[*string](d, "AccessConstraints")
}

func (d *DocumentRoot) SetAccessConstraints(v *string) {
	setRootElement(d, "AccessConstraints", v)
}

func (d *DocumentRoot) AllowedValues() *AllowedValuesType {
	return rootElement[*AllowedValuesType](d, "AllowedValues")
}

func (d *DocumentRoot) SetAllowedValues(v *AllowedValuesType) {
	setRootElement(d, "AllowedValues", v)
}

func (d *DocumentRoot) AnyValue() *AnyValueType {
	return rootElement[*AnyValueType](d, "AnyValue")
}

func (d *DocumentRoot) SetAnyValue(v *AnyValueType) {
	setRootElement(d, "AnyValue", v)
}

func (d *DocumentRoot) AvailableCRS() *string {
	return rootElement[*string](d, "AvailableCRS")
}

func (d *DocumentRoot) SetAvailableCRS(v *string) {
	setRootElement(d, "AvailableCRS", v)
}

func (d *DocumentRoot) BoundingBox() *BoundingBoxType {
	return rootElement[*BoundingBoxType](d, "BoundingBox")
}

func (d *DocumentRoot) SetBoundingBox(v *BoundingBoxType) {
	setRootElement(d, "BoundingBox", v)
}

func (d *DocumentRoot) ContactInfo() *ContactType {
	return rootElement[*ContactType](d, "ContactInfo")
}

func (d *DocumentRoot) SetContactInfo(v *ContactType) {
	setRootElement(d, "ContactInfo", v)
}

func (d *DocumentRoot) DatasetDescriptionSummary() *DatasetDescriptionSummaryBaseType {
	return rootElement[*DatasetDescriptionSummaryBaseType](d, "DatasetDescriptionSummary")
}

func (d *DocumentRoot) SetDatasetDescriptionSummary(v *DatasetDescriptionSummaryBaseType) {
	setRootElement(d, "DatasetDescriptionSummary", v)
}

func (d *DocumentRoot) DataType() *DomainMetadataType {
	return rootElement[*DomainMetadataType](d, "DataType")
}

func (d *DocumentRoot) SetDataType(v *DomainMetadataType) {
	setRootElement(d, "DataType", v)
}

func (d *DocumentRoot) DCP() *DCPType {
	return rootElement[*DCPType](d, "DCP")
}

func (d *DocumentRoot) SetDCP(v *DCPType) {
	setRootElement(d, "DCP", v)
}

func (d *DocumentRoot) DefaultValue() *ValueType {
	return rootElement[*ValueType](d, "DefaultValue")
}

func (d *DocumentRoot) SetDefaultValue(v *ValueType) {
	setRootElement(d, "DefaultValue", v)
}

func (d *DocumentRoot) Exception() *ExceptionType {
	return rootElement[*ExceptionType](d, "Exception")
}

func (d *DocumentRoot) SetException(v *ExceptionType) {
	setRootElement(d, "Exception", v)
}

func (d *DocumentRoot) ExceptionReport() *ExceptionReportType {
	return rootElement[*ExceptionReportType](d, "ExceptionReport")
}

func (d *DocumentRoot) SetExceptionReport(v *ExceptionReportType) {
	setRootElement(d, "ExceptionReport", v)
}

func (d *DocumentRoot) ExtendedCapabilities() *AnyElement {
	return rootElement[*AnyElement](d, "ExtendedCapabilities")
}

func (d *DocumentRoot) SetExtendedCapabilities(v *AnyElement) {
	setRootElement(d, "ExtendedCapabilities", v)
}

func (d *DocumentRoot) Fees() *string {
	return rootElement[*string](d, "Fees")
}

func (d *DocumentRoot) SetFees(v *string) {
	setRootElement(d, "Fees", v)
}

func (d *DocumentRoot) GetCapabilities() *GetCapabilitiesType {
	return rootElement[*GetCapabilitiesType](d, "GetCapabilities")
}

func (d *DocumentRoot) SetGetCapabilities(v *GetCapabilitiesType) {
	setRootElement(d, "GetCapabilities", v)
}

func (d *DocumentRoot) GetResourceByID() *GetResourceByIdType {
	return rootElement[*GetResourceByIdType](d, "GetResourceByID")
}

func (d *DocumentRoot) SetGetResourceByID(v *GetResourceByIdType) {
	setRootElement(d, "GetResourceByID", v)
}

func (d *DocumentRoot) HTTP() *HTTPType {
	return rootElement[*HTTPType](d, "HTTP")
}

func (d *DocumentRoot) SetHTTP(v *HTTPType) {
	setRootElement(d, "HTTP", v)
}

func (d *DocumentRoot) Identifier() *CodeType {
	return rootElement[*CodeType](d, "Identifier")
}

func (d *DocumentRoot) SetIdentifier(v *CodeType) {
	setRootElement(d, "Identifier", v)
}

func (d *DocumentRoot) IndividualName() *string {
	return rootElement[*string](d, "IndividualName")
}

func (d *DocumentRoot) SetIndividualName(v *string) {
	setRootElement(d, "IndividualName", v)
}

func (d *DocumentRoot) InputData() *ManifestType {
	return rootElement[*ManifestType](d, "InputData")
}

func (d *DocumentRoot) SetInputData(v *ManifestType) {
	setRootElement(d, "InputData", v)
}

func (d *DocumentRoot) Keywords() *KeywordsType {
	return rootElement[*KeywordsType](d, "Keywords")
}

func (d *DocumentRoot) SetKeywords(v *KeywordsType) {
	setRootElement(d, "Keywords", v)
}

func (d *DocumentRoot) Language() *string {
	return rootElement[*string](d, "Language")
}

func (d *DocumentRoot) SetLanguage(v *string) {
	setRootElement(d, "Language", v)
}

func (d *DocumentRoot) Manifest() *ManifestType {
	return rootElement[*ManifestType](d, "Manifest")
}

func (d *DocumentRoot) SetManifest(v *ManifestType) {
	setRootElement(d, "Manifest", v)
}

func (d *DocumentRoot) MaximumValue() *ValueType {
	return rootElement[*ValueType](d, "MaximumValue")
}

func (d *DocumentRoot) SetMaximumValue(v *ValueType) {
	setRootElement(d, "MaximumValue", v)
}

func (d *DocumentRoot) Meaning() *DomainMetadataType {
	return rootElement[*DomainMetadataType](d, "Meaning")
}

func (d *DocumentRoot) SetMeaning(v *DomainMetadataType) {
	setRootElement(d, "Meaning", v)
}

func (d *DocumentRoot) Metadata() *MetadataType {
	return rootElement[*MetadataType](d, "Metadata")
}

func (d *DocumentRoot) SetMetadata(v *MetadataType) {
	setRootElement(d, "Metadata", v)
}

func (d *DocumentRoot) MinimumValue() *ValueType {
	return rootElement[*ValueType](d, "MinimumValue")
}

func (d *DocumentRoot) SetMinimumValue(v *ValueType) {
	setRootElement(d, "MinimumValue", v)
}

func (d *DocumentRoot) NoValues() *NoValuesType {
	return rootElement[*NoValuesType](d, "NoValues")
}

func (d *DocumentRoot) SetNoValues(v *NoValuesType) {
	setRootElement(d, "NoValues", v)
}

func (d *DocumentRoot) Operation() *OperationType {
	return rootElement[*OperationType](d, "Operation")
}

func (d *DocumentRoot) SetOperation(v *OperationType) {
	setRootElement(d, "Operation", v)
}

func (d *DocumentRoot) OperationResponse() *ManifestType {
	return rootElement[*ManifestType](d, "OperationResponse")
}

func (d *DocumentRoot) SetOperationResponse(v *ManifestType) {
	setRootElement(d, "OperationResponse", v)
}

func (d *DocumentRoot) OperationsMetadata() *OperationsMetadataType {
	return rootElement[*OperationsMetadataType](d, "OperationsMetadata")
}

func (d *DocumentRoot) SetOperationsMetadata(v *OperationsMetadataType) {
	setRootElement(d, "OperationsMetadata", v)
}

func (d *DocumentRoot) OrganisationName() *string {
	return rootElement[*string](d, "OrganisationName")
}

func (d *DocumentRoot) SetOrganisationName(v *string) {
	setRootElement(d, "OrganisationName", v)
}

func (d *DocumentRoot) OtherSource() *MetadataType {
	return rootElement[*MetadataType](d, "OtherSource")
}

func (d *DocumentRoot) SetOtherSource(v *MetadataType) {
	setRootElement(d, "OtherSource", v)
}

func (d *DocumentRoot) OutputFormat() *MimeType {
	return rootElement[*MimeType](d, "OutputFormat")
}

func (d *DocumentRoot) SetOutputFormat(v *MimeType) {
	setRootElement(d, "OutputFormat", v)
}

func (d *DocumentRoot) PointOfContact() *ResponsiblePartyType {
	return rootElement[*ResponsiblePartyType](d, "PointOfContact")
}

func (d *DocumentRoot) SetPointOfContact(v *ResponsiblePartyType) {
	setRootElement(d, "PointOfContact", v)
}

func (d *DocumentRoot) PositionName() *string {
	return rootElement[*string](d, "PositionName")
}

func (d *DocumentRoot) SetPositionName(v *string) {
	setRootElement(d, "PositionName", v)
}

func (d *DocumentRoot) Range() *RangeType {
	return rootElement[*RangeType](d, "Range")
}

func (d *DocumentRoot) SetRange(v *RangeType) {
	setRootElement(d, "Range", v)
}

func (d *DocumentRoot) Reference() *ReferenceType {
	return rootElement[*ReferenceType](d, "Reference")
}

func (d *DocumentRoot) SetReference(v *ReferenceType) {
	setRootElement(d, "Reference", v)
}

func (d *DocumentRoot) ReferenceGroup() *ReferenceGroupType {
	return rootElement[*ReferenceGroupType](d, "ReferenceGroup")
}

func (d *DocumentRoot) SetReferenceGroup(v *ReferenceGroupType) {
	setRootElement(d, "ReferenceGroup", v)
}

func (d *DocumentRoot) ReferenceSystem() *DomainMetadataType {
	return rootElement[*DomainMetadataType](d, "ReferenceSystem")
}

func (d *DocumentRoot) SetReferenceSystem(v *DomainMetadataType) {
	setRootElement(d, "ReferenceSystem", v)
}

func (d *DocumentRoot) Resource() *AnyElement {
	return rootElement[*AnyElement](d, "Resource")
}

func (d *DocumentRoot) SetResource(v *AnyElement) {
	setRootElement(d, "Resource", v)
}

func (d *DocumentRoot) Role() *CodeType {
	return rootElement[*CodeType](d, "Role")
}

func (d *DocumentRoot) SetRole(v *CodeType) {
	setRootElement(d, "Role", v)
}

func (d *DocumentRoot) ServiceIdentification() *ServiceIdentificationType {
	return rootElement[*ServiceIdentificationType](d, "ServiceIdentification")
}

func (d *DocumentRoot) SetServiceIdentification(v *ServiceIdentificationType) {
	setRootElement(d, "ServiceIdentification", v)
}

func (d *DocumentRoot) ServiceProvider() *ServiceProviderType {
	return rootElement[*ServiceProviderType](d, "ServiceProvider")
}

func (d *DocumentRoot) SetServiceProvider(v *ServiceProviderType) {
	setRootElement(d, "ServiceProvider", v)
}

func (d *DocumentRoot) ServiceReference() *ServiceReferenceType {
	return rootElement[*ServiceReferenceType](d, "ServiceReference")
}

func (d *DocumentRoot) SetServiceReference(v *ServiceReferenceType) {
	setRootElement(d, "ServiceReference", v)
}

func (d *DocumentRoot) Spacing() *ValueType {
	return rootElement[*ValueType](d, "Spacing")
}

func (d *DocumentRoot) SetSpacing(v *ValueType) {
	setRootElement(d, "Spacing", v)
}

func (d *DocumentRoot) SupportedCRS() *string {
	return rootElement[*string](d, "SupportedCRS")
}

func (d *DocumentRoot) SetSupportedCRS(v *string) {
	setRootElement(d, "SupportedCRS", v)
}

func (d *DocumentRoot) Title() *LanguageStringType {
	return rootElement[*LanguageStringType](d, "Title")
}

func (d *DocumentRoot) SetTitle(v *LanguageStringType) {
	setRootElement(d, "Title", v)
}

func (d *DocumentRoot) UOM() *DomainMetadataType {
	return rootElement[*DomainMetadataType](d, "UOM")
}

func (d *DocumentRoot) SetUOM(v *DomainMetadataType) {
	setRootElement(d, "UOM", v)
}

func (d *DocumentRoot) Value() *ValueType {
	return rootElement[*ValueType](d, "Value")
}

func (d *DocumentRoot) SetValue(v *ValueType) {
	setRootElement(d, "Value", v)
}

func (d *DocumentRoot) ValuesReference() *ValuesReferenceType {
	return rootElement[*ValuesReferenceType](d, "ValuesReference")
}

func (d *DocumentRoot) SetValuesReference(v *ValuesReferenceType) {
	setRootElement(d, "ValuesReference", v)
}

func (d *DocumentRoot) WGS84BoundingBox() *WGS84BoundingBoxType {
	return rootElement[*WGS84BoundingBoxType](d, "WGS84BoundingBox")
}

func (d *DocumentRoot) SetWGS84BoundingBox(v *WGS84BoundingBoxType) {
	setRootElement(d, "WGS84BoundingBox", v)
}
