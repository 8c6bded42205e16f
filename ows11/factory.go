package ows11

// Factory creates empty model instances.
type Factory struct {
	pkg *Package
}

func NewFactory(pkg *Package) *Factory {
	return &Factory{pkg: pkg}
}

// Package returns the package the factory creates instances of.
func (f *Factory) Package() *Package {
	return f.pkg
}

// Create returns a new instance of the class as a pointer.
func (f *Factory) Create(id ClassID) (any, error) {
	switch id {
	case ClassAbstractReferenceBaseType:
		return f.CreateAbstractReferenceBaseType(), nil
	case ClassAcceptFormatsType:
		return f.CreateAcceptFormatsType(), nil
	case ClassAcceptVersionsType:
		return f.CreateAcceptVersionsType(), nil
	case ClassAddressType:
		return f.CreateAddressType(), nil
	case ClassAllowedValuesType:
		return f.CreateAllowedValuesType(), nil
	case ClassAnyValueType:
		return f.CreateAnyValueType(), nil
	case ClassBasicIdentificationType:
		return f.CreateBasicIdentificationType(), nil
	case ClassBoundingBoxType:
		return f.CreateBoundingBoxType(), nil
	case ClassCapabilitiesBaseType:
		return f.CreateCapabilitiesBaseType(), nil
	case ClassCodeType:
		return f.CreateCodeType(), nil
	case ClassContactType:
		return f.CreateContactType(), nil
	case ClassContentsBaseType:
		return f.CreateContentsBaseType(), nil
	case ClassDatasetDescriptionSummaryBaseType:
		return f.CreateDatasetDescriptionSummaryBaseType(), nil
	case ClassDCPType:
		return f.CreateDCPType(), nil
	case ClassDescriptionType:
		return f.CreateDescriptionType(), nil
	case ClassDocumentRoot:
		return f.CreateDocumentRoot(), nil
	case ClassDomainMetadataType:
		return f.CreateDomainMetadataType(), nil
	case ClassDomainType:
		return f.CreateDomainType(), nil
	case ClassExceptionReportType:
		return f.CreateExceptionReportType(), nil
	case ClassExceptionType:
		return f.CreateExceptionType(), nil
	case ClassGetCapabilitiesType:
		return f.CreateGetCapabilitiesType(), nil
	case ClassGetResourceByIdType:
		return f.CreateGetResourceByIdType(), nil
	case ClassHTTPType:
		return f.CreateHTTPType(), nil
	case ClassIdentificationType:
		return f.CreateIdentificationType(), nil
	case ClassKeywordsType:
		return f.CreateKeywordsType(), nil
	case ClassLanguageStringType:
		return f.CreateLanguageStringType(), nil
	case ClassManifestType:
		return f.CreateManifestType(), nil
	case ClassMetadataType:
		return f.CreateMetadataType(), nil
	case ClassNoValuesType:
		return f.CreateNoValuesType(), nil
	case ClassOnlineResourceType:
		return f.CreateOnlineResourceType(), nil
	case ClassOperationsMetadataType:
		return f.CreateOperationsMetadataType(), nil
	case ClassOperationType:
		return f.CreateOperationType(), nil
	case ClassRangeType:
		return f.CreateRangeType(), nil
	case ClassReferenceGroupType:
		return f.CreateReferenceGroupType(), nil
	case ClassReferenceType:
		return f.CreateReferenceType(), nil
	case ClassRequestMethodType:
		return f.CreateRequestMethodType(), nil
	case ClassResponsiblePartySubsetType:
		return f.CreateResponsiblePartySubsetType(), nil
	case ClassResponsiblePartyType:
		return f.CreateResponsiblePartyType(), nil
	case ClassSectionsType:
		return f.CreateSectionsType(), nil
	case ClassServiceIdentificationType:
		return f.CreateServiceIdentificationType(), nil
	case ClassServiceProviderType:
		return f.CreateServiceProviderType(), nil
	case ClassServiceReferenceType:
		return f.CreateServiceReferenceType(), nil
	case ClassTelephoneType:
		return f.CreateTelephoneType(), nil
	case ClassUnNamedDomainType:
		return f.CreateUnNamedDomainType(), nil
	case ClassValuesReferenceType:
		return f.CreateValuesReferenceType(), nil
	case ClassValueType:
		return f.CreateValueType(), nil
	case ClassWGS84BoundingBoxType:
		return f.CreateWGS84BoundingBoxType(), nil
	}
	return nil, ErrClassNotFound(id)
}

func (f *Factory) CreateAbstractReferenceBaseType() *AbstractReferenceBaseType {
	return &AbstractReferenceBaseType{}
}

func (f *Factory) CreateAcceptFormatsType() *AcceptFormatsType {
	return &AcceptFormatsType{}
}

func (f *Factory) CreateAcceptVersionsType() *AcceptVersionsType {
	return &AcceptVersionsType{}
}

func (f *Factory) CreateAddressType() *AddressType {
	return &AddressType{}
}

func (f *Factory) CreateAllowedValuesType() *AllowedValuesType {
	return &AllowedValuesType{}
}

func (f *Factory) CreateAnyValueType() *AnyValueType {
	return &AnyValueType{}
}

func (f *Factory) CreateBasicIdentificationType() *BasicIdentificationType {
	return &BasicIdentificationType{}
}

func (f *Factory) CreateBoundingBoxType() *BoundingBoxType {
	return &BoundingBoxType{}
}

func (f *Factory) CreateCapabilitiesBaseType() *CapabilitiesBaseType {
	return &CapabilitiesBaseType{}
}

func (f *Factory) CreateCodeType() *CodeType {
	return &CodeType{}
}

func (f *Factory) CreateContactType() *ContactType {
	return &ContactType{}
}

func (f *Factory) CreateContentsBaseType() *ContentsBaseType {
	return &ContentsBaseType{}
}

func (f *Factory) CreateDatasetDescriptionSummaryBaseType() *DatasetDescriptionSummaryBaseType {
	return &DatasetDescriptionSummaryBaseType{}
}

func (f *Factory) CreateDCPType() *DCPType {
	return &DCPType{}
}

func (f *Factory) CreateDescriptionType() *DescriptionType {
	return &DescriptionType{}
}

// CreateDocumentRoot returns a document without root and with empty
// namespace and schema location maps.
func (f *Factory) CreateDocumentRoot() *DocumentRoot {
	return &DocumentRoot{
		XMLNSPrefixMap:    map[string]string{},
		XSISchemaLocation: map[string]string{},
	}
}

func (f *Factory) CreateDomainMetadataType() *DomainMetadataType {
	return &DomainMetadataType{}
}

func (f *Factory) CreateDomainType() *DomainType {
	return &DomainType{}
}

func (f *Factory) CreateExceptionReportType() *ExceptionReportType {
	return &ExceptionReportType{}
}

func (f *Factory) CreateExceptionType() *ExceptionType {
	return &ExceptionType{}
}

func (f *Factory) CreateGetCapabilitiesType() *GetCapabilitiesType {
	return &GetCapabilitiesType{ExtendedProperties: map[string]any{}}
}

func (f *Factory) CreateGetResourceByIdType() *GetResourceByIdType {
	return &GetResourceByIdType{}
}

func (f *Factory) CreateHTTPType() *HTTPType {
	return &HTTPType{}
}

func (f *Factory) CreateIdentificationType() *IdentificationType {
	return &IdentificationType{}
}

func (f *Factory) CreateKeywordsType() *KeywordsType {
	return &KeywordsType{}
}

func (f *Factory) CreateLanguageStringType() *LanguageStringType {
	return &LanguageStringType{}
}

func (f *Factory) CreateManifestType() *ManifestType {
	return &ManifestType{}
}

func (f *Factory) CreateMetadataType() *MetadataType {
	return &MetadataType{}
}

func (f *Factory) CreateNoValuesType() *NoValuesType {
	return &NoValuesType{}
}

func (f *Factory) CreateOnlineResourceType() *OnlineResourceType {
	return &OnlineResourceType{}
}

func (f *Factory) CreateOperationsMetadataType() *OperationsMetadataType {
	return &OperationsMetadataType{}
}

func (f *Factory) CreateOperationType() *OperationType {
	return &OperationType{}
}

func (f *Factory) CreateRangeType() *RangeType {
	return &RangeType{}
}

func (f *Factory) CreateReferenceGroupType() *ReferenceGroupType {
	return &ReferenceGroupType{}
}

func (f *Factory) CreateReferenceType() *ReferenceType {
	return &ReferenceType{}
}

func (f *Factory) CreateRequestMethodType() *RequestMethodType {
	return &RequestMethodType{}
}

func (f *Factory) CreateResponsiblePartySubsetType() *ResponsiblePartySubsetType {
	return &ResponsiblePartySubsetType{}
}

func (f *Factory) CreateResponsiblePartyType() *ResponsiblePartyType {
	return &ResponsiblePartyType{}
}

func (f *Factory) CreateSectionsType() *SectionsType {
	return &SectionsType{}
}

func (f *Factory) CreateServiceIdentificationType() *ServiceIdentificationType {
	return &ServiceIdentificationType{}
}

func (f *Factory) CreateServiceProviderType() *ServiceProviderType {
	return &ServiceProviderType{}
}

func (f *Factory) CreateServiceReferenceType() *ServiceReferenceType {
	return &ServiceReferenceType{}
}

func (f *Factory) CreateTelephoneType() *TelephoneType {
	return &TelephoneType{}
}

func (f *Factory) CreateUnNamedDomainType() *UnNamedDomainType {
	return &UnNamedDomainType{}
}

func (f *Factory) CreateValuesReferenceType() *ValuesReferenceType {
	return &ValuesReferenceType{}
}

func (f *Factory) CreateValueType() *ValueType {
	return &ValueType{}
}

func (f *Factory) CreateWGS84BoundingBoxType() *WGS84BoundingBoxType {
	return &WGS84BoundingBoxType{}
}
