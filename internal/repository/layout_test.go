package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opmodel/enhance/internal/project"
)

func TestLayoutPath(t *testing.T) {
	tests := []struct {
		name string
		c    project.Coordinates
		want string
	}{
		{
			name: "plain jar",
			c:    project.Coordinates{GroupID: "io.ebean", ArtifactID: "ebean-api", Version: "15.8.0", Extension: "jar"},
			want: "io/ebean/ebean-api/15.8.0/ebean-api-15.8.0.jar",
		},
		{
			name: "classifier",
			c:    project.Coordinates{GroupID: "com.acme", ArtifactID: "model", Version: "1.0", Classifier: "tests", Extension: "test-jar"},
			want: "com/acme/model/1.0/model-1.0-tests.jar",
		},
		{
			name: "empty extension defaults to jar",
			c:    project.Coordinates{GroupID: "g", ArtifactID: "a", Version: "1"},
			want: "g/a/1/a-1.jar",
		},
		{
			name: "other packaging keeps its extension",
			c:    project.Coordinates{GroupID: "g", ArtifactID: "a", Version: "1", Extension: "zip"},
			want: "g/a/1/a-1.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LayoutPath(tt.c))
		})
	}
}
