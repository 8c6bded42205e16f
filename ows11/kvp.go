package ows11

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jf-tech/go-corelib/caches"
	"golang.org/x/exp/slices"

	"github.com/delta10/ows/internal/utils"
)

// GetCapabilitiesRequest is the value of the KVP request parameter.
const GetCapabilitiesRequest = "GetCapabilities"

// KVP parameter names as written by EncodeGetCapabilitiesKVP. Parsing
// ignores case.
const (
	ParamService        = "service"
	ParamRequest        = "request"
	ParamAcceptVersions = "AcceptVersions"
	ParamSections       = "Sections"
	ParamAcceptFormats  = "AcceptFormats"
	ParamUpdateSequence = "updateSequence"
)

var reservedParams = []string{"service", "request", "acceptversions", "sections", "acceptformats", "updatesequence"}

// ParseGetCapabilitiesKVP reads a GetCapabilities request from query
// parameters. Parameters it does not know end up in ExtendedProperties
// under their lowercased name.
func ParseGetCapabilitiesKVP(query url.Values) (ServiceType, *GetCapabilitiesType, error) {
	if utils.QueryParamsContainMultipleKeys(query) {
		return "", nil, NewServiceError(InvalidParameterValue, "", "a parameter is given more than once")
	}

	params := utils.QueryParamsToLower(query)
	for key, values := range params {
		if len(values) > 1 {
			return "", nil, NewServiceError(InvalidParameterValue, key, "parameter is given more than once")
		}
	}

	service := strings.TrimSpace(params.Get("service"))
	if service == "" {
		return "", nil, NewServiceError(MissingParameterValue, ParamService)
	}

	request := strings.TrimSpace(params.Get("request"))
	switch {
	case request == "":
		return "", nil, NewServiceError(MissingParameterValue, ParamRequest)
	case request != GetCapabilitiesRequest:
		return "", nil, NewServiceError(OperationNotSupported, request)
	}

	req := &GetCapabilitiesType{ExtendedProperties: map[string]any{}}

	if v := params.Get("acceptversions"); v != "" {
		req.AcceptVersions = &AcceptVersionsType{}
		for _, version := range utils.SplitList(v) {
			if !matches(VersionPattern, version) {
				return "", nil, NewServiceError(InvalidParameterValue, ParamAcceptVersions, "invalid version «"+version+"»")
			}
			req.AcceptVersions.Version = append(req.AcceptVersions.Version, VersionType(version))
		}
	}

	if v, ok := params["sections"]; ok {
		req.Sections = &SectionsType{}
		for _, section := range utils.SplitList(v[0]) {
			if !slices.Contains(allSections, section) {
				return "", nil, NewServiceError(InvalidParameterValue, ParamSections, "unknown section «"+section+"»")
			}
			req.Sections.Section = append(req.Sections.Section, section)
		}
	}

	if v := params.Get("acceptformats"); v != "" {
		req.AcceptFormats = &AcceptFormatsType{}
		for _, format := range utils.SplitList(v) {
			if !matches(MimeTypePattern, format) {
				return "", nil, NewServiceError(InvalidParameterValue, ParamAcceptFormats, "invalid format «"+format+"»")
			}
			req.AcceptFormats.OutputFormat = append(req.AcceptFormats.OutputFormat, MimeType(format))
		}
	}

	req.UpdateSequence = UpdateSequenceType(strings.TrimSpace(params.Get("updatesequence")))

	for key, values := range params {
		if !slices.Contains(reservedParams, key) {
			req.ExtendedProperties[key] = values[0]
		}
	}

	return ServiceType(service), req, nil
}

// EncodeGetCapabilitiesKVP writes req as query parameters. String valued
// ExtendedProperties are written as well.
func EncodeGetCapabilitiesKVP(service ServiceType, req *GetCapabilitiesType) url.Values {
	values := url.Values{}
	values.Set(ParamService, string(service))
	values.Set(ParamRequest, GetCapabilitiesRequest)
	if req == nil {
		return values
	}

	if req.AcceptVersions != nil && len(req.AcceptVersions.Version) > 0 {
		values.Set(ParamAcceptVersions, joinList(req.AcceptVersions.Version))
	}
	if req.Sections != nil {
		values.Set(ParamSections, strings.Join(req.Sections.Section, ","))
	}
	if req.AcceptFormats != nil && len(req.AcceptFormats.OutputFormat) > 0 {
		values.Set(ParamAcceptFormats, joinList(req.AcceptFormats.OutputFormat))
	}
	if req.UpdateSequence != "" {
		values.Set(ParamUpdateSequence, string(req.UpdateSequence))
	}

	for key, value := range req.ExtendedProperties {
		if s, ok := value.(string); ok && !slices.Contains(reservedParams, strings.ToLower(key)) {
			values.Set(key, s)
		}
	}

	return values
}

// IncludesSection reports whether the response should carry the named
// section. No Sections parameter, or the All section, selects every section.
func (r *GetCapabilitiesType) IncludesSection(name string) bool {
	if r.Sections == nil {
		return true
	}
	return slices.Contains(r.Sections.Section, SectionAll) || slices.Contains(r.Sections.Section, name)
}

// CheckUpdateSequence compares the requested update sequence with the
// current one. upToDate is true when the client already holds the current
// capabilities.
func (r *GetCapabilitiesType) CheckUpdateSequence(current UpdateSequenceType) (upToDate bool, err error) {
	if r.UpdateSequence == "" || current == "" {
		return false, nil
	}
	switch c := compareSequences(r.UpdateSequence, current); {
	case c == 0:
		return true, nil
	case c > 0:
		return false, NewServiceError(InvalidUpdateSequence, ParamUpdateSequence, "update sequence «"+string(r.UpdateSequence)+"» is ahead of «"+string(current)+"»")
	}
	return false, nil
}

// compareSequences orders integer sequences numerically and any other
// values, timestamps included, as strings.
func compareSequences(a, b UpdateSequenceType) int {
	x, y := string(a), string(b)
	if matches(`\d+`, x) && matches(`\d+`, y) {
		x, y = strings.TrimLeft(x, "0"), strings.TrimLeft(y, "0")
		if len(x) != len(y) {
			if len(x) < len(y) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(x, y)
}

// NegotiateVersion picks the version to answer req with: the highest
// supported version when the client accepts any, otherwise the first
// accepted version the server supports.
func NegotiateVersion(req *GetCapabilitiesType, supported ...VersionType) (VersionType, error) {
	if len(supported) == 0 {
		return "", NewServiceError(NoApplicableCode, "", "no supported versions")
	}

	if req == nil || req.AcceptVersions == nil || len(req.AcceptVersions.Version) == 0 {
		highest := supported[0]
		for _, version := range supported[1:] {
			if CompareVersions(version, highest) > 0 {
				highest = version
			}
		}
		return highest, nil
	}

	for _, version := range req.AcceptVersions.Version {
		if slices.Contains(supported, version) {
			return version, nil
		}
	}

	return "", NewServiceError(VersionNegotiationFailed, ParamAcceptVersions, "none of the accepted versions is supported")
}

// CompareVersions compares dotted versions part by part. Missing parts
// count as zero; parts that are not numbers compare as strings.
func CompareVersions(a, b VersionType) int {
	as, bs := strings.Split(string(a), "."), strings.Split(string(b), ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		x, y := versionPart(as, i), versionPart(bs, i)
		xn, xerr := strconv.Atoi(x)
		yn, yerr := strconv.Atoi(y)
		if xerr == nil && yerr == nil {
			if xn != yn {
				if xn < yn {
					return -1
				}
				return 1
			}
			continue
		}
		if c := strings.Compare(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func versionPart(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "0"
}

func matches(pattern, s string) bool {
	re, err := caches.GetRegex(`^(?:` + pattern + `)$`)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

func joinList[T ~string](items []T) string {
	ss := make([]string, len(items))
	for i, item := range items {
		ss[i] = string(item)
	}
	return strings.Join(ss, ",")
}
