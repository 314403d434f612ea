package guard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRecorder is a minimal Recorder for tests; production
// aggregation lives outside this module.
type memoryRecorder struct {
	names   []string
	results []CheckResult
}

func (m *memoryRecorder) AddCheck(
	name string, result CheckResult,
) {
	m.names = append(m.names, name)
	m.results = append(m.results, result)
}

func newCaptureChecker() (*Checker, *bytes.Buffer, *bytes.Buffer) {
	var progress, diag bytes.Buffer
	return &Checker{
		Progress: &progress,
		Diag:     &diag,
	}, &progress, &diag
}

func TestChecker_PassRecordsOnce(t *testing.T) {
	c, progress, diag := newCaptureChecker()
	rec := &memoryRecorder{}

	c.Check(
		rec, "Partition table created", true,
		partitionMetadata(),
		"Partition vda1 exists", "sfdisk output: vda1",
	)

	require.Len(t, rec.results, 1)
	assert.Equal(t,
		[]string{"Partition table created"}, rec.names)
	assert.Equal(t,
		Pass("Partition vda1 exists"), rec.results[0])

	assert.Contains(t, progress.String(),
		"    checking: Partition table created "+
			"(protects: Disk is partitioned correctly)")
	assert.Empty(t, diag.String(),
		"passing checks must not write diagnostics")
}

func TestChecker_FailRecordsFailure(t *testing.T) {
	c, _, _ := newCaptureChecker()
	rec := &memoryRecorder{}

	c.Check(
		rec, "Partition table created", false,
		partitionMetadata(),
		"Partition vda1 exists", "sfdisk output: ...",
	)

	require.Len(t, rec.results, 1)
	assert.Equal(t,
		[]string{"Partition table created"}, rec.names)
	assert.Equal(t,
		Fail("Partition vda1 exists", "sfdisk output: ..."),
		rec.results[0])
}

func TestChecker_FailWritesDiagnosticBlock(t *testing.T) {
	c, progress, diag := newCaptureChecker()
	rec := &memoryRecorder{}

	c.Check(
		rec, "Partition table created", false,
		partitionMetadata(),
		"Partition vda1 exists", "sfdisk output: ...",
	)

	assert.Contains(t, progress.String(),
		"checking: Partition table created")

	out := diag.String()
	assert.Contains(t, out,
		"CHEAT-GUARDED CHECK FAILED: Partition table created")
	assert.Contains(t, out,
		"PROTECTS: Disk is partitioned correctly")
	assert.Contains(t, out, "SEVERITY: CRITICAL")
	assert.Contains(t, out,
		"  1. Accept exit code without verification")
	assert.Contains(t, out, "  2. Skip partition check")
	assert.Contains(t, out,
		"CONSEQUENCE: No partitions, installation fails silently")
	assert.Contains(t, out, checkBorder)
}

func TestChecker_ProgressEmittedOnPassAndFail(t *testing.T) {
	c, progress, _ := newCaptureChecker()
	rec := &memoryRecorder{}
	meta := partitionMetadata()

	c.Check(rec, "first", true, meta, "ok", "")
	c.Check(rec, "second", false, meta, "ok", "bad")

	out := progress.String()
	assert.Contains(t, out, "checking: first")
	assert.Contains(t, out, "checking: second")
}

func TestChecker_DuplicateNamesNotDeduplicated(t *testing.T) {
	c, _, _ := newCaptureChecker()
	rec := &memoryRecorder{}
	meta := partitionMetadata()

	c.Check(rec, "same", true, meta, "a", "")
	c.Check(rec, "same", false, meta, "a", "b")

	require.Len(t, rec.results, 2)
	assert.Equal(t, []string{"same", "same"}, rec.names)
	assert.Equal(t, Pass("a"), rec.results[0])
	assert.Equal(t, Fail("a", "b"), rec.results[1])
}

func TestChecker_ManyChecksAllCollected(t *testing.T) {
	c, _, _ := newCaptureChecker()
	rec := &memoryRecorder{}
	meta := partitionMetadata()

	conditions := []bool{true, false, true, false, false}
	for _, ok := range conditions {
		c.Check(rec, "step check", ok, meta, "exp", "act")
	}

	require.Len(t, rec.results, len(conditions))
	for i, ok := range conditions {
		assert.Equal(t, ok, rec.results[i].Passed())
	}
}

func TestNewChecker_DefaultStreams(t *testing.T) {
	c := NewChecker()

	require.NotNil(t, c.Progress)
	require.NotNil(t, c.Diag)
}
