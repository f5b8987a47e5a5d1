package integrationtests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/formulago/internal/formula"
	"github.com/vk/formulago/internal/testutil"
)

func TestExtraction_RoundTrip(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A realistic formula: metadata declarations, bottle checksums that must
	// be ignored, and an install block whose syntax must never matter.
	files := map[string]string{
		"Formula/l/lib-png.rb": `class LibPng < Formula
  desc "Library for manipulating PNG images"
  homepage "http://example.org"
  url "http://example.org/pkg-1.0.tar.gz"
  sha256 "abc123"
  license "libpng-2.0"

  bottle do
    sha256 cellar: :any, arm64_sonoma: "0000000000000000"
  end

  depends_on "zlib"

  def install
    system "./configure", "--prefix=#{prefix}"
    if build.head? then raise "unbalanced garbage {{{"
  end
end
`,
	}

	// --- Act ---
	result := testutil.RunExtraction(t, files, nil)

	// --- Assert ---
	require.NoError(t, result.Err)

	var record formula.Record
	require.NoError(t, json.Unmarshal([]byte(result.Output), &record))
	assert.Equal(t, "lib-png", record.Name)
	require.NotNil(t, record.Description)
	assert.Equal(t, "Library for manipulating PNG images", *record.Description)
	require.NotNil(t, record.Homepage)
	assert.Equal(t, "http://example.org", *record.Homepage)
	require.NotNil(t, record.URL)
	assert.Equal(t, "http://example.org/pkg-1.0.tar.gz", *record.URL)
	require.NotNil(t, record.SHA256)
	assert.Equal(t, "abc123", *record.SHA256)
	assert.Empty(t, record.Dependencies)
}

func TestExtraction_LaterDeclarationWins(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"pkg.rb": `class Pkg < Formula
  url "http://stale.example/pkg-0.9.tar.gz"
  url "http://example.org/pkg-1.0.tar.gz"
end
`,
	}

	result := testutil.RunExtraction(t, files, nil)

	require.NoError(t, result.Err)

	var record formula.Record
	require.NoError(t, json.Unmarshal([]byte(result.Output), &record))
	require.NotNil(t, record.URL)
	assert.Equal(t, "http://example.org/pkg-1.0.tar.gz", *record.URL)
}
