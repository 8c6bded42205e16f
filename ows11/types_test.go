package ows11

import (
	"testing"

	"github.com/jf-tech/go-corelib/strs"
	"github.com/stretchr/testify/require"
)

func TestUnsettableDefaults(t *testing.T) {
	require := require.New(t)

	t.Run("range closure", func(t *testing.T) {
		r := NewFactory(NewPackage()).CreateRangeType()
		require.False(r.IsSetRangeClosure())
		require.Equal(RangeClosureClosed, r.RangeClosure())

		r.SetRangeClosure(RangeClosureClosed)
		require.True(r.IsSetRangeClosure(), "setting the default value must mark the attribute as set")
		require.Equal(RangeClosureClosed, r.RangeClosure())

		r.SetRangeClosure(RangeClosureOpenClosed)
		require.Equal(RangeClosureOpenClosed, r.RangeClosure())

		r.UnsetRangeClosure()
		require.False(r.IsSetRangeClosure())
		require.Equal(RangeClosureClosed, r.RangeClosure())
	})

	t.Run("xlink type of references", func(t *testing.T) {
		f := NewFactory(NewPackage())
		for _, ref := range []ReferenceBase{f.CreateAbstractReferenceBaseType(), f.CreateReferenceType(), f.CreateServiceReferenceType()} {
			base := ref.RefBase()
			require.False(base.IsSetType())
			require.Equal("simple", base.Type())

			base.SetType("simple")
			require.True(base.IsSetType())

			base.UnsetType()
			require.False(base.IsSetType())
			require.Equal(DefaultXLinkType, base.Type())
		}
	})

	t.Run("document root range closure", func(t *testing.T) {
		doc := NewFactory(NewPackage()).CreateDocumentRoot()
		require.False(doc.IsSetRangeClosure())
		require.Equal(RangeClosureClosed, doc.RangeClosure())
		doc.SetRangeClosure(RangeClosureOpen)
		require.True(doc.IsSetRangeClosure())
		require.Equal(RangeClosureOpen, doc.RangeClosure())
		doc.UnsetRangeClosure()
		require.False(doc.IsSetRangeClosure())
	})
}

func TestServiceIdentificationScenario(t *testing.T) {
	require := require.New(t)

	si := NewFactory(NewPackage()).CreateServiceIdentificationType()
	si.ServiceType = &CodeType{Value: "WFS"}
	si.ServiceTypeVersion = append(si.ServiceTypeVersion, "2.0.0")

	require.Equal("WFS", si.ServiceType.Value)
	require.Equal([]VersionType{"2.0.0"}, si.ServiceTypeVersion)
}

func TestAddressDeliveryPointKeepsDuplicates(t *testing.T) {
	require := require.New(t)

	a := NewFactory(NewPackage()).CreateAddressType()
	a.DeliveryPoint = append(a.DeliveryPoint, "123 Main St")
	a.DeliveryPoint = append(a.DeliveryPoint, "123 Main St")
	a.City = strs.StrPtr("Amsterdam")

	require.Equal([]string{"123 Main St", "123 Main St"}, a.DeliveryPoint)
	require.Equal("Amsterdam", strs.StrPtrOrElse(a.City, ""))
	require.Equal("", strs.StrPtrOrElse(a.Country, ""))
}

func TestGroupViews(t *testing.T) {
	require := require.New(t)

	t.Run("bounding box group", func(t *testing.T) {
		id := &IdentificationType{}
		bb := &BoundingBoxType{CRS: "EPSG:28992", LowerCorner: PositionType{0, 0}, UpperCorner: PositionType{10, 10}}
		wgs := &WGS84BoundingBoxType{BoundingBoxType{LowerCorner: PositionType{4.7, 52.3}, UpperCorner: PositionType{5.1, 52.5}}}

		id.AddBoundingBox(bb)
		require.Equal([]*BoundingBoxType{bb}, id.BoundingBox())
		require.Empty(id.WGS84BoundingBox())

		id.AddWGS84BoundingBox(wgs)
		require.Equal([]*BoundingBoxType{bb, &wgs.BoundingBoxType}, id.BoundingBox(), "the head view must include substitutes")
		require.Equal([]*WGS84BoundingBoxType{wgs}, id.WGS84BoundingBox())
		require.Equal([]string{"BoundingBox", "WGS84BoundingBox"}, id.BoundingBoxGroup.Names())

		t.Run("must be ok to change a member through a view", func(t *testing.T) {
			id.WGS84BoundingBox()[0].CRS = "urn:ogc:def:crs:OGC:2:84"
			require.Equal("urn:ogc:def:crs:OGC:2:84", id.BoundingBoxGroup[1].Value.Box().CRS)
		})

		t.Run("must be ok to remove a member", func(t *testing.T) {
			id.BoundingBoxGroup.Remove(0)
			require.Equal(1, id.BoundingBoxGroup.Len())
			require.Equal([]*BoundingBoxType{&wgs.BoundingBoxType}, id.BoundingBox())
		})
	})

	t.Run("available crs group", func(t *testing.T) {
		id := &IdentificationType{}
		id.AddAvailableCRS("EPSG:4326")
		id.AddSupportedCRS("EPSG:28992")
		id.AvailableCRSGroup.Add("AvailableCRS", "EPSG:3857")

		require.Equal([]string{"EPSG:4326", "EPSG:28992", "EPSG:3857"}, id.AvailableCRS())
		require.Equal([]string{"EPSG:28992"}, id.SupportedCRS())
	})

	t.Run("allowed values keep document order", func(t *testing.T) {
		av := &AllowedValuesType{}
		v1 := &ValueType{Value: "a"}
		r := &RangeType{MinimumValue: &ValueType{Value: "1"}}
		v2 := &ValueType{Value: "b"}
		av.AddValue(v1)
		av.AddRange(r)
		av.AddValue(v2)

		require.Equal([]*ValueType{v1, v2}, av.Value())
		require.Equal([]*RangeType{r}, av.Range())
		require.Equal([]string{"Value", "Range", "Value"}, av.Group.Names())

		av.Range()[0].SetRangeClosure(RangeClosureOpen)
		require.Equal(RangeClosureOpen, av.Group[1].Value.(*RangeType).RangeClosure())
	})

	t.Run("http request methods", func(t *testing.T) {
		h := &HTTPType{}
		get := &RequestMethodType{OnlineResourceType: OnlineResourceType{XLinkAttrs{Href: "http://example.com/ows?"}}}
		post := &RequestMethodType{OnlineResourceType: OnlineResourceType{XLinkAttrs{Href: "http://example.com/ows"}}}
		h.AddPost(post)
		h.AddGet(get)

		require.Equal([]*RequestMethodType{get}, h.Get())
		require.Equal([]*RequestMethodType{post}, h.Post())
		require.Equal([]string{"Post", "Get"}, h.Group.Names())
	})

	t.Run("reference group", func(t *testing.T) {
		g := &ReferenceGroupType{}
		ref := &ReferenceType{AbstractReferenceBaseType: AbstractReferenceBaseType{Href: "http://example.com/a"}}
		sref := &ServiceReferenceType{ReferenceType: ReferenceType{AbstractReferenceBaseType: AbstractReferenceBaseType{Href: "http://example.com/b"}}}
		g.AddReference(ref)
		g.AddServiceReference(sref)

		require.Equal([]*ReferenceType{ref, &sref.ReferenceType}, g.Reference())
		require.Equal([]*ServiceReferenceType{sref}, g.ServiceReference())
		bases := g.AbstractReferenceBase()
		require.Len(bases, 2)
		require.Equal("http://example.com/a", bases[0].Href)
		require.Equal("http://example.com/b", bases[1].Href)
	})

	t.Run("dataset summary bounding boxes", func(t *testing.T) {
		s := &DatasetDescriptionSummaryBaseType{}
		bb := &BoundingBoxType{CRS: "EPSG:4326"}
		s.AddBoundingBox(bb)
		s.BoundingBoxGroup.Add("WGS84BoundingBox", &WGS84BoundingBoxType{})
		require.Len(s.BoundingBox(), 2)
		require.Same(bb, s.BoundingBox()[0])
	})

	t.Run("values with and without names", func(t *testing.T) {
		var g Group[int]
		g.Add("a", 1)
		g.Add("b", 2)
		g.Add("a", 3)
		require.Equal([]int{1, 2, 3}, g.Values())
		require.Equal([]int{1, 3}, g.Values("a"))
		require.Empty(g.Values("c"))
	})
}

func TestOperationByName(t *testing.T) {
	require := require.New(t)

	om := &OperationsMetadataType{Operation: []OperationType{{Name: "GetCapabilities"}, {Name: "GetFeature"}}}
	op := om.OperationByName("GetFeature")
	require.NotNil(op)
	op.Metadata = append(op.Metadata, MetadataType{About: "x"})
	require.Len(om.Operation[1].Metadata, 1)
	require.Nil(om.OperationByName("DescribeFeatureType"))
}

func TestPositionType(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to round trip", func(t *testing.T) {
		p := PositionType{4.5, -52.25, 1e-7}
		b, err := p.MarshalText()
		require.NoError(err)
		require.Equal("4.5 -52.25 1e-07", string(b))

		var q PositionType
		require.NoError(q.UnmarshalText([]byte(" 4.5\n-52.25  1e-07 ")))
		require.Equal(p, q)
	})

	t.Run("must be error on bad ordinate", func(t *testing.T) {
		var q PositionType
		err := q.UnmarshalText([]byte("1 two"))
		require.ErrorIs(err, ErrInvalidError)
	})
}

func TestRangeClosureType(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		text  string
		want  RangeClosureType
		valid bool
	}{
		{"closed", RangeClosureClosed, true},
		{"open", RangeClosureOpen, true},
		{"open-closed", RangeClosureOpenClosed, true},
		{"closed-open", RangeClosureClosedOpen, true},
		{"continuous", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, err := ParseRangeClosureType(tt.text)
			if !tt.valid {
				require.ErrorIs(err, ErrInvalidError)
				return
			}
			require.NoError(err)
			require.Equal(tt.want, c)
			require.True(c.Valid())
			require.Equal(tt.text, c.String())
		})
	}

	t.Run("must be error to marshal an unknown closure", func(t *testing.T) {
		_, err := RangeClosureType("half").MarshalText()
		require.ErrorIs(err, ErrInvalidError)
	})
}
