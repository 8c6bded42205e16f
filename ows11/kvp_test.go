package ows11

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGetCapabilitiesKVP(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to parse a full request", func(t *testing.T) {
		query, err := url.ParseQuery("SERVICE=WFS&Request=GetCapabilities&AcceptVersions=2.0.0, 1.1.0&sections=ServiceIdentification,Contents&acceptFormats=text/xml&updateSequence=42&vendorOption=x")
		require.NoError(err)

		service, req, err := ParseGetCapabilitiesKVP(query)
		require.NoError(err)
		require.Equal(ServiceType("WFS"), service)
		require.Equal([]VersionType{"2.0.0", "1.1.0"}, req.AcceptVersions.Version)
		require.Equal([]string{"ServiceIdentification", "Contents"}, req.Sections.Section)
		require.Equal([]MimeType{"text/xml"}, req.AcceptFormats.OutputFormat)
		require.Equal(UpdateSequenceType("42"), req.UpdateSequence)
		require.Equal(map[string]any{"vendoroption": "x"}, req.ExtendedProperties)

		require.True(req.IncludesSection(SectionContents))
		require.False(req.IncludesSection(SectionServiceProvider))
	})

	t.Run("must be ok to parse a minimal request", func(t *testing.T) {
		_, req, err := ParseGetCapabilitiesKVP(url.Values{"service": {"WMS"}, "request": {"GetCapabilities"}})
		require.NoError(err)
		require.Nil(req.AcceptVersions)
		require.Nil(req.Sections)
		require.Nil(req.AcceptFormats)
		require.Empty(req.UpdateSequence)
		require.True(req.IncludesSection(SectionOperationsMetadata))
	})

	t.Run("must be error", func(t *testing.T) {
		tests := []struct {
			name    string
			query   url.Values
			code    ExceptionCode
			locator string
		}{
			{"no service", url.Values{"request": {"GetCapabilities"}}, MissingParameterValue, "service"},
			{"blank service", url.Values{"service": {" "}, "request": {"GetCapabilities"}}, MissingParameterValue, "service"},
			{"no request", url.Values{"service": {"WFS"}}, MissingParameterValue, "request"},
			{"other request", url.Values{"service": {"WFS"}, "request": {"GetFeature"}}, OperationNotSupported, "GetFeature"},
			{"repeated key", url.Values{"service": {"WFS", "WMS"}, "request": {"GetCapabilities"}}, InvalidParameterValue, "service"},
			{"keys differing in case", url.Values{"service": {"WFS"}, "SERVICE": {"WMS"}, "request": {"GetCapabilities"}}, InvalidParameterValue, ""},
			{"bad version", url.Values{"service": {"WFS"}, "request": {"GetCapabilities"}, "AcceptVersions": {"2.0.0,2"}}, InvalidParameterValue, "AcceptVersions"},
			{"bad section", url.Values{"service": {"WFS"}, "request": {"GetCapabilities"}, "Sections": {"Layers"}}, InvalidParameterValue, "Sections"},
			{"bad format", url.Values{"service": {"WFS"}, "request": {"GetCapabilities"}, "AcceptFormats": {"xml"}}, InvalidParameterValue, "AcceptFormats"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := ParseGetCapabilitiesKVP(tt.query)
				var se *ServiceError
				require.ErrorAs(err, &se)
				require.Equal(tt.code, se.Code)
				require.Equal(tt.locator, se.Locator)
			})
		}
	})
}

func TestEncodeGetCapabilitiesKVP(t *testing.T) {
	require := require.New(t)

	req := &GetCapabilitiesType{
		AcceptVersions: &AcceptVersionsType{Version: []VersionType{"2.0.0", "1.1.0"}},
		Sections:       &SectionsType{Section: []string{SectionAll}},
		AcceptFormats:  &AcceptFormatsType{OutputFormat: []MimeType{"text/xml"}},
		UpdateSequence: "7",
		ExtendedProperties: map[string]any{
			"vendorOption": "x",
			"Request":      "GetMap",
			"count":        3,
		},
	}
	values := EncodeGetCapabilitiesKVP("WFS", req)
	require.Equal(url.Values{
		"service":        {"WFS"},
		"request":        {"GetCapabilities"},
		"AcceptVersions": {"2.0.0,1.1.0"},
		"Sections":       {"All"},
		"AcceptFormats":  {"text/xml"},
		"updateSequence": {"7"},
		"vendorOption":   {"x"},
	}, values)

	t.Run("must be ok to parse what was encoded", func(t *testing.T) {
		service, parsed, err := ParseGetCapabilitiesKVP(values)
		require.NoError(err)
		require.Equal(ServiceType("WFS"), service)
		require.Equal(req.AcceptVersions, parsed.AcceptVersions)
		require.Equal(req.Sections, parsed.Sections)
		require.Equal(req.AcceptFormats, parsed.AcceptFormats)
		require.Equal(req.UpdateSequence, parsed.UpdateSequence)
		require.True(parsed.IncludesSection(SectionServiceProvider))
	})

	t.Run("must be ok without a request body", func(t *testing.T) {
		require.Equal(url.Values{"service": {"WMS"}, "request": {"GetCapabilities"}}, EncodeGetCapabilitiesKVP("WMS", nil))
	})
}

func TestNegotiateVersion(t *testing.T) {
	require := require.New(t)

	supported := []VersionType{"1.1.0", "2.0.2", "2.0.10", "1.0.0"}
	accept := func(versions ...VersionType) *GetCapabilitiesType {
		return &GetCapabilitiesType{AcceptVersions: &AcceptVersionsType{Version: versions}}
	}

	tests := []struct {
		name string
		req  *GetCapabilitiesType
		want VersionType
	}{
		{"no request", nil, "2.0.10"},
		{"no accepted versions", &GetCapabilitiesType{}, "2.0.10"},
		{"empty accepted versions", accept(), "2.0.10"},
		{"first accepted wins", accept("3.0.0", "1.1.0", "2.0.2"), "1.1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NegotiateVersion(tt.req, supported...)
			require.NoError(err)
			require.Equal(tt.want, v)
		})
	}

	t.Run("must be error", func(t *testing.T) {
		_, err := NegotiateVersion(accept("3.0.0"), supported...)
		var se *ServiceError
		require.ErrorAs(err, &se)
		require.Equal(VersionNegotiationFailed, se.Code)

		_, err = NegotiateVersion(nil)
		require.ErrorAs(err, &se)
		require.Equal(NoApplicableCode, se.Code)
	})
}

func TestCompareVersions(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		a, b VersionType
		want int
	}{
		{"1.1.0", "1.1.0", 0},
		{"1.1.0", "2.0.0", -1},
		{"2.0.10", "2.0.2", 1},
		{"1.1", "1.1.0", 0},
		{"1.1.1", "1.1", 1},
		{"1.a.0", "1.b.0", -1},
	}
	for _, tt := range tests {
		require.Equal(tt.want, CompareVersions(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
		require.Equal(-tt.want, CompareVersions(tt.b, tt.a), "%s vs %s", tt.b, tt.a)
	}
}

func TestCheckUpdateSequence(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		requested, current UpdateSequenceType
		upToDate           bool
		code               ExceptionCode
	}{
		{"", "5", false, ""},
		{"5", "", false, ""},
		{"5", "5", true, ""},
		{"4", "5", false, ""},
		{"6", "5", false, InvalidUpdateSequence},
		{"9", "10", false, ""},
		{"10", "9", false, InvalidUpdateSequence},
		{"007", "7", true, ""},
		{"2023-01-31T10:00:00Z", "2023-02-01T08:00:00Z", false, ""},
		{"2023-02-01T08:00:00Z", "2023-01-31T10:00:00Z", false, InvalidUpdateSequence},
	}
	for _, tt := range tests {
		req := &GetCapabilitiesType{UpdateSequence: tt.requested}
		upToDate, err := req.CheckUpdateSequence(tt.current)
		require.Equal(tt.upToDate, upToDate)
		if tt.code == "" {
			require.NoError(err)
			continue
		}
		var se *ServiceError
		require.ErrorAs(err, &se)
		require.Equal(tt.code, se.Code)
	}
}
