package bmeta

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, "v1.2.0", "", "abc123")

	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}
