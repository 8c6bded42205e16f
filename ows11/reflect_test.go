package ows11

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReflectiveAccess(t *testing.T) {
	require := require.New(t)

	pkg := NewPackage()
	f := NewFactory(pkg)

	t.Run("must be ok to get and set plain features", func(t *testing.T) {
		si := f.CreateServiceIdentificationType()

		require.NoError(pkg.Set(si, ServiceIdentificationType_ServiceType, &CodeType{Value: "WFS"}))
		require.NoError(pkg.Set(si, ServiceIdentificationType_ServiceTypeVersion, []string{"1.1.0", "2.0.0"}))
		require.NoError(pkg.Set(si, ServiceIdentificationType_Fees, "NONE"))
		require.NoError(pkg.Set(si, DescriptionType_Title, []LanguageStringType{{Value: "Roads"}}))

		require.Equal("WFS", si.ServiceType.Value)
		require.Equal([]VersionType{"1.1.0", "2.0.0"}, si.ServiceTypeVersion)
		require.Equal("NONE", *si.Fees)
		require.Equal("Roads", si.Title[0].Value)

		v, err := pkg.Get(si, ServiceIdentificationType_ServiceTypeVersion)
		require.NoError(err)
		require.Equal([]VersionType{"1.1.0", "2.0.0"}, v)

		set, err := pkg.IsSet(si, ServiceIdentificationType_AccessConstraints)
		require.NoError(err)
		require.False(set)
		set, err = pkg.IsSet(si, ServiceIdentificationType_Fees)
		require.NoError(err)
		require.True(set)

		require.NoError(pkg.Unset(si, ServiceIdentificationType_Fees))
		require.Nil(si.Fees)
	})

	t.Run("unsettable features report their default", func(t *testing.T) {
		r := f.CreateRangeType()

		v, err := pkg.Get(r, RangeType_RangeClosure)
		require.NoError(err)
		require.Equal(RangeClosureClosed, v)
		set, err := pkg.IsSet(r, RangeType_RangeClosure)
		require.NoError(err)
		require.False(set)

		require.NoError(pkg.Set(r, RangeType_RangeClosure, "closed"))
		set, err = pkg.IsSet(r, RangeType_RangeClosure)
		require.NoError(err)
		require.True(set)

		require.NoError(pkg.Set(r, RangeType_RangeClosure, RangeClosureOpen))
		require.Equal(RangeClosureOpen, r.RangeClosure())

		require.NoError(pkg.Unset(r, RangeType_RangeClosure))
		require.False(r.IsSetRangeClosure())

		require.NoError(pkg.Set(r, RangeType_RangeClosure, RangeClosureOpen))
		require.NoError(pkg.Set(r, RangeType_RangeClosure, nil))
		require.False(r.IsSetRangeClosure(), "setting nil must unset")

		ref := f.CreateReferenceType()
		v, err = pkg.Get(ref, AbstractReferenceBaseType_Type)
		require.NoError(err)
		require.Equal("simple", v)
		require.NoError(pkg.Set(ref, AbstractReferenceBaseType_Type, "simple"))
		require.True(ref.IsSetType())
	})

	t.Run("derived views are read only", func(t *testing.T) {
		av := f.CreateAllowedValuesType()
		av.AddValue(&ValueType{Value: "a"})

		v, err := pkg.Get(av, AllowedValuesType_Value)
		require.NoError(err)
		require.Equal([]*ValueType{{Value: "a"}}, v)

		set, err := pkg.IsSet(av, AllowedValuesType_Range)
		require.NoError(err)
		require.False(set)

		err = pkg.Set(av, AllowedValuesType_Value, []*ValueType{})
		require.ErrorIs(err, ErrReadOnlyError)
		err = pkg.Unset(av, AllowedValuesType_Range)
		require.ErrorIs(err, ErrReadOnlyError)

		require.NoError(pkg.Unset(av, AllowedValuesType_Group))
		require.Empty(av.Value())
	})

	t.Run("document root elements", func(t *testing.T) {
		doc := f.CreateDocumentRoot()
		si := f.CreateServiceIdentificationType()

		require.NoError(pkg.Set(doc, DocumentRoot_ServiceIdentification, si))
		require.Same(si, doc.ServiceIdentification())

		v, err := pkg.Get(doc, DocumentRoot_ServiceIdentification)
		require.NoError(err)
		require.Same(si, v)
		set, err := pkg.IsSet(doc, DocumentRoot_ServiceProvider)
		require.NoError(err)
		require.False(set)

		require.NoError(pkg.Set(doc, DocumentRoot_Fees, "free"))
		require.Equal("free", *doc.Fees())
		require.Nil(doc.ServiceIdentification())

		require.NoError(pkg.Unset(doc, DocumentRoot_Fees))
		name, _ := doc.Root()
		require.Empty(name)
	})

	t.Run("must be error", func(t *testing.T) {
		_, err := pkg.Get(RangeType{}, RangeType_Spacing)
		require.ErrorIs(err, ErrInvalidError)

		_, err = pkg.Get((*RangeType)(nil), RangeType_Spacing)
		require.ErrorIs(err, ErrInvalidError)

		_, err = pkg.Get(&struct{}{}, 0)
		require.ErrorIs(err, ErrNotFoundError)

		_, err = pkg.Get(f.CreateRangeType(), RangeType_FeatureCount)
		require.ErrorIs(err, ErrNotFoundError)

		err = pkg.Set(f.CreateRangeType(), RangeType_Spacing, 42)
		require.ErrorIs(err, ErrInvalidError)
	})
}
