package project

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// pomFile is the subset of a Maven POM read by the loader.
type pomFile struct {
	XMLName    xml.Name `xml:"project"`
	GroupID    string   `xml:"groupId"`
	ArtifactID string   `xml:"artifactId"`
	Version    string   `xml:"version"`
	Parent     struct {
		GroupID    string `xml:"groupId"`
		ArtifactID string `xml:"artifactId"`
		Version    string `xml:"version"`
	} `xml:"parent"`
	Properties struct {
		Entries []pomProperty `xml:",any"`
	} `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Classifier string `xml:"classifier"`
	Type       string `xml:"type"`
	Scope      string `xml:"scope"`
}

var placeholderRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// maxInterpolationPasses bounds nested property expansion.
const maxInterpolationPasses = 8

// ParsePOM reads the direct dependencies of a Maven POM.
//
// ${...} placeholders are expanded from <properties> and the project.*,
// pom.* and project.parent.* built-ins. groupId and version fall back to the
// parent declaration. Unknown placeholders are left untouched.
func ParsePOM(r io.Reader) (*Project, error) {
	var pom pomFile
	if err := xml.NewDecoder(r).Decode(&pom); err != nil {
		return nil, fmt.Errorf("decoding pom: %w", err)
	}

	groupID := strings.TrimSpace(pom.GroupID)
	if groupID == "" {
		groupID = strings.TrimSpace(pom.Parent.GroupID)
	}
	version := strings.TrimSpace(pom.Version)
	if version == "" {
		version = strings.TrimSpace(pom.Parent.Version)
	}

	props := map[string]string{
		"project.groupId":           groupID,
		"project.artifactId":        strings.TrimSpace(pom.ArtifactID),
		"project.version":           version,
		"project.parent.groupId":    strings.TrimSpace(pom.Parent.GroupID),
		"project.parent.artifactId": strings.TrimSpace(pom.Parent.ArtifactID),
		"project.parent.version":    strings.TrimSpace(pom.Parent.Version),
	}
	for _, k := range []string{"groupId", "artifactId", "version"} {
		props["pom."+k] = props["project."+k]
	}
	for _, p := range pom.Properties.Entries {
		props[p.XMLName.Local] = strings.TrimSpace(p.Value)
	}

	expand := func(s string) string {
		s = strings.TrimSpace(s)
		for i := 0; i < maxInterpolationPasses && strings.Contains(s, "${"); i++ {
			next := placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
				if v, ok := props[m[2:len(m)-1]]; ok {
					return v
				}
				return m
			})
			if next == s {
				break
			}
			s = next
		}
		return s
	}

	proj := &Project{
		GroupID:      expand(groupID),
		ArtifactID:   expand(pom.ArtifactID),
		Version:      expand(version),
		Dependencies: make([]Dependency, 0, len(pom.Dependencies)),
	}
	for _, d := range pom.Dependencies {
		proj.Dependencies = append(proj.Dependencies, Dependency{
			GroupID:    expand(d.GroupID),
			ArtifactID: expand(d.ArtifactID),
			Version:    expand(d.Version),
			Classifier: expand(d.Classifier),
			Type:       expand(d.Type),
			Scope:      expand(d.Scope),
		}.withDefaults())
	}

	return proj, nil
}
