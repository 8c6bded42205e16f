package ows11

type AddressType struct {
	DeliveryPoint         []string `xml:"DeliveryPoint"`
	City                  *string  `xml:"City"`
	AdministrativeArea    *string  `xml:"AdministrativeArea"`
	PostalCode            *string  `xml:"PostalCode"`
	Country               *string  `xml:"Country"`
	ElectronicMailAddress []string `xml:"ElectronicMailAddress"`
}

type TelephoneType struct {
	Voice     []string `xml:"Voice"`
	Facsimile []string `xml:"Facsimile"`
}

// ContactType is the information needed to contact a responsible party.
type ContactType struct {
	Phone               *TelephoneType      `xml:"Phone"`
	Address             *AddressType        `xml:"Address"`
	OnlineResource      *OnlineResourceType `xml:"OnlineResource"`
	HoursOfService      *string             `xml:"HoursOfService"`
	ContactInstructions *string             `xml:"ContactInstructions"`
}

// ResponsiblePartyType identifies a person or organisation and its role.
type ResponsiblePartyType struct {
	IndividualName   *string      `xml:"IndividualName"`
	OrganisationName *string      `xml:"OrganisationName"`
	PositionName     *string      `xml:"PositionName"`
	ContactInfo      *ContactType `xml:"ContactInfo"`
	Role             *CodeType    `xml:"Role"`
}

// ResponsiblePartySubsetType is ResponsiblePartyType without the
// organisation name, as used inside ServiceProvider.
type ResponsiblePartySubsetType struct {
	IndividualName *string      `xml:"IndividualName"`
	PositionName   *string      `xml:"PositionName"`
	ContactInfo    *ContactType `xml:"ContactInfo"`
	Role           *CodeType    `xml:"Role"`
}

type ServiceProviderType struct {
	ProviderName   string                      `xml:"ProviderName"`
	ProviderSite   *OnlineResourceType         `xml:"ProviderSite"`
	ServiceContact *ResponsiblePartySubsetType `xml:"ServiceContact"`
}
