package ows11

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validCapabilities() *CapabilitiesBaseType {
	c := testCapabilities()
	http := &HTTPType{}
	http.AddPost(&RequestMethodType{OnlineResourceType: OnlineResourceType{XLinkAttrs{Href: "http://example.com/ows"}}})
	c.OperationsMetadata.Operation = append(c.OperationsMetadata.Operation, OperationType{Name: "GetFeature", DCP: []DCPType{{HTTP: http}}})
	return c
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	pkg := NewPackage()
	f := NewFactory(pkg)

	t.Run("must be ok to validate a complete tree", func(t *testing.T) {
		require.NoError(pkg.Validate(validCapabilities()))

		doc := f.CreateDocumentRoot()
		doc.SetOperationsMetadata(validCapabilities().OperationsMetadata)
		require.NoError(pkg.Validate(doc))
	})

	t.Run("must be error on missing required features", func(t *testing.T) {
		c := validCapabilities()
		c.Version = ""
		c.ServiceIdentification.ServiceType = nil
		c.ServiceIdentification.ServiceTypeVersion = nil
		c.OperationsMetadata.Operation = c.OperationsMetadata.Operation[:1]

		err := pkg.Validate(c)
		require.ErrorIs(err, ErrMissedError)
		require.ErrorContains(err, "CapabilitiesBaseType/version")
		require.ErrorContains(err, "ServiceIdentification/serviceType» needs 1 value(s), has 0")
		require.ErrorContains(err, "ServiceIdentification/serviceTypeVersion")
		require.ErrorContains(err, "OperationsMetadata/operation» needs 2 value(s), has 1")
	})

	t.Run("must be error on invalid facets", func(t *testing.T) {
		c := validCapabilities()
		c.Version = "2.0"
		c.ServiceIdentification.ServiceTypeVersion = []VersionType{"2.0.0", "two"}

		err := pkg.Validate(c)
		require.ErrorIs(err, ErrInvalidError)
		require.ErrorContains(err, "value «2.0» does not match VersionType")
		require.ErrorContains(err, "value «two» does not match VersionType")
		require.NotContains(err.Error(), "«2.0.0»")

		r := f.CreateRangeType()
		r.Closure = new(RangeClosureType)
		*r.Closure = "continuous"
		err = pkg.Validate(r)
		require.ErrorIs(err, ErrInvalidError)
		require.ErrorContains(err, "is not one of closed, open, open-closed, closed-open")

		ref := f.CreateReferenceType()
		ref.Href = "http://example.com/data"
		format := MimeType("xml")
		ref.Format = &format
		err = pkg.Validate(ref)
		require.ErrorContains(err, "does not match MimeType")
		format = "text/xml; subtype=gml/3.2"
		require.NoError(pkg.Validate(ref))
	})

	t.Run("must be error on a 3D WGS 84 bounding box", func(t *testing.T) {
		w := f.CreateWGS84BoundingBoxType()
		w.LowerCorner = PositionType{4.7, 52.3, 0}
		w.UpperCorner = PositionType{5.1, 52.5}
		err := pkg.Validate(w)
		require.ErrorIs(err, ErrInvalidError)
		require.ErrorContains(err, "lowerCorner» has 3 ordinates, PositionType2D needs 2")

		b := f.CreateBoundingBoxType()
		b.LowerCorner = PositionType{4.7, 52.3, 0}
		b.UpperCorner = PositionType{5.1, 52.5, 10}
		require.NoError(pkg.Validate(b))
	})

	t.Run("must be error on shared instances", func(t *testing.T) {
		c := validCapabilities()
		http := c.OperationsMetadata.Operation[0].DCP[0].HTTP
		http.AddPost(http.Get()[0])

		err := pkg.Validate(c)
		require.ErrorIs(err, ErrSharedError)
		require.ErrorContains(err, "HTTP/Post[1]» is the same instance as «OperationsMetadata/Operation[0]/DCP[0]/HTTP/Get[0]")
	})

	t.Run("must be ok with empty domains on several parameters", func(t *testing.T) {
		c := validCapabilities()
		op := &c.OperationsMetadata.Operation[0]
		op.Parameter = []DomainType{
			{Name: "AcceptFormats", UnNamedDomainType: UnNamedDomainType{AnyValue: &AnyValueType{}}},
			{Name: "Sections", UnNamedDomainType: UnNamedDomainType{AnyValue: &AnyValueType{}}},
		}
		c.OperationsMetadata.Constraint = []DomainType{
			{Name: "ImplementsSOAP", UnNamedDomainType: UnNamedDomainType{NoValues: &NoValuesType{}}},
			{Name: "ImplementsKVP", UnNamedDomainType: UnNamedDomainType{NoValues: &NoValuesType{}}},
		}
		require.NoError(pkg.Validate(c))

		doc, err := pkg.Decode(strings.NewReader(`<ows:OperationsMetadata xmlns:ows="http://www.opengis.net/ows/1.1" xmlns:xlink="http://www.w3.org/1999/xlink">
  <ows:Operation name="GetCapabilities">
    <ows:DCP><ows:HTTP><ows:Get xlink:href="http://example.com/ows?"/></ows:HTTP></ows:DCP>
    <ows:Parameter name="AcceptFormats"><ows:AnyValue/></ows:Parameter>
    <ows:Parameter name="Sections"><ows:AnyValue/></ows:Parameter>
  </ows:Operation>
  <ows:Operation name="GetFeature">
    <ows:DCP><ows:HTTP><ows:Get xlink:href="http://example.com/ows?"/></ows:HTTP></ows:DCP>
  </ows:Operation>
  <ows:Constraint name="ImplementsSOAP"><ows:NoValues/><ows:DefaultValue>FALSE</ows:DefaultValue></ows:Constraint>
  <ows:Constraint name="ImplementsKVP"><ows:NoValues/><ows:DefaultValue>TRUE</ows:DefaultValue></ows:Constraint>
</ows:OperationsMetadata>`))
		require.NoError(err)
		require.NoError(pkg.Validate(doc))
	})

	t.Run("must be error on bad group members", func(t *testing.T) {
		av := f.CreateAllowedValuesType()
		av.Group.Add("Spacing", &ValueType{})
		av.Group.Add("Range", &ValueType{})
		av.Group.Add("Value", nil)

		err := pkg.Validate(av)
		require.ErrorContains(err, "does not allow member «Spacing»")
		require.ErrorContains(err, "member «Range» holds *ows11.ValueType, RangeType expected")
		require.ErrorContains(err, "member «Value» has no value")
	})

	t.Run("must be error on a document without proper root", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		require.ErrorIs(pkg.Validate(doc), ErrMissedError)

		doc.SetAbstractReferenceBase(f.CreateAbstractReferenceBaseType())
		require.ErrorContains(pkg.Validate(doc), "root element «AbstractReferenceBase» is abstract")
	})

	t.Run("must be error for a value outside the model", func(t *testing.T) {
		require.ErrorIs(pkg.Validate(42), ErrInvalidError)
	})
}
