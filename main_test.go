package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"empty scene name defaults", "", false},
		{"cornell scene", "cornell", false},
		{"spheregrid scene", "spheregrid", false},
		{"unknown scene", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Greater(t, s.AspectRatio(), 0.0)
			assert.NotNil(t, s.BVH())
			assert.NotNil(t, s.Camera())
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	dir := createOutputDir("cornell")
	assert.True(t, strings.HasSuffix(dir, "cornell"))
	assert.True(t, strings.Contains(dir, "output"))

	dir = createOutputDir("")
	assert.True(t, strings.HasSuffix(dir, "default"))
}
