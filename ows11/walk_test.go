package ows11

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCapabilities() *CapabilitiesBaseType {
	get := &RequestMethodType{OnlineResourceType: OnlineResourceType{XLinkAttrs{Href: "http://example.com/ows?"}}}
	post := &RequestMethodType{OnlineResourceType: OnlineResourceType{XLinkAttrs{Href: "http://example.com/ows"}}}
	http := &HTTPType{}
	http.AddGet(get)
	http.AddPost(post)

	return &CapabilitiesBaseType{
		Version: "2.0.0",
		ServiceIdentification: &ServiceIdentificationType{
			DescriptionType:    DescriptionType{Title: []LanguageStringType{{Value: "Roads"}}},
			ServiceType:        &CodeType{Value: "WFS"},
			ServiceTypeVersion: []VersionType{"2.0.0"},
		},
		OperationsMetadata: &OperationsMetadataType{
			Operation: []OperationType{
				{Name: "GetCapabilities", DCP: []DCPType{{HTTP: http}}},
			},
		},
	}
}

func TestWalk(t *testing.T) {
	require := require.New(t)

	pkg := NewPackage()

	t.Run("must be ok to visit every instance", func(t *testing.T) {
		var paths []string
		err := pkg.Walk(testCapabilities(), func(path string, v any) error {
			require.NotNil(pkg.ClassOf(v))
			paths = append(paths, path)
			return nil
		})
		require.NoError(err)
		require.Equal([]string{
			"",
			"ServiceIdentification",
			"ServiceIdentification/Title[0]",
			"ServiceIdentification/ServiceType",
			"OperationsMetadata",
			"OperationsMetadata/Operation[0]",
			"OperationsMetadata/Operation[0]/DCP[0]",
			"OperationsMetadata/Operation[0]/DCP[0]/HTTP",
			"OperationsMetadata/Operation[0]/DCP[0]/HTTP/Get[0]",
			"OperationsMetadata/Operation[0]/DCP[0]/HTTP/Post[0]",
		}, paths)
	})

	t.Run("must be ok to skip children", func(t *testing.T) {
		var paths []string
		err := pkg.Walk(testCapabilities(), func(path string, v any) error {
			paths = append(paths, path)
			if _, ok := v.(*OperationsMetadataType); ok {
				return SkipChildren
			}
			return nil
		})
		require.NoError(err)
		require.Equal([]string{"", "ServiceIdentification", "ServiceIdentification/Title[0]", "ServiceIdentification/ServiceType", "OperationsMetadata"}, paths)
	})

	t.Run("must be ok to walk a document through its root", func(t *testing.T) {
		doc := NewFactory(pkg).CreateDocumentRoot()
		av := &AllowedValuesType{}
		av.AddValue(&ValueType{Value: "a"})
		av.AddRange(&RangeType{MinimumValue: &ValueType{Value: "1"}})
		av.AddValue(&ValueType{Value: "b"})
		doc.SetAllowedValues(av)

		var paths []string
		require.NoError(pkg.Walk(doc, func(path string, v any) error {
			paths = append(paths, path)
			return nil
		}))
		require.Equal([]string{
			"",
			"AllowedValues",
			"AllowedValues/Value[0]",
			"AllowedValues/Range[0]",
			"AllowedValues/Range[0]/MinimumValue",
			"AllowedValues/Value[1]",
		}, paths)
	})

	t.Run("must stop on error", func(t *testing.T) {
		stop := errors.New("stop")
		count := 0
		err := pkg.Walk(testCapabilities(), func(path string, v any) error {
			count++
			if path == "OperationsMetadata" {
				return stop
			}
			return nil
		})
		require.ErrorIs(err, stop)
		require.Equal(5, count)
	})

	t.Run("must be error for a value outside the model", func(t *testing.T) {
		err := pkg.Walk(&struct{}{}, func(string, any) error { return nil })
		require.ErrorIs(err, ErrInvalidError)
		err = pkg.Walk(CapabilitiesBaseType{}, func(string, any) error { return nil })
		require.ErrorIs(err, ErrInvalidError)
	})
}
