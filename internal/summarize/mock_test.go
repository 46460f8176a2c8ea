package summarize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotice = `Department of the Treasury Internal Revenue Service
Notice CP 23 Tax Year 2017
JAMES & KAREN Q. HINDS
SSN nnn-nn-nnnn
Billing Summary
Amount you owed $480.00
Interest charges $20.73
Amount due by February 20, 2018 $500.73
Pay by February 20, 2018`

func TestMockFromText(t *testing.T) {
	s := MockFromText(sampleNotice)
	assert.Equal(t, "CP23", s.NoticeType)
	assert.Equal(t, "$500.73", s.AmountDue)
	assert.Equal(t, "February 20, 2018", s.PayBy)
	assert.Equal(t, "nnn-nn-nnnn", s.SSNMasked)
	assert.NotNil(t, s.Breakdown)
}

func TestMockFromTextNothingFound(t *testing.T) {
	s := MockFromText("hello")
	assert.Equal(t, "", s.NoticeType)
	assert.Equal(t, "", s.AmountDue)
}

func TestMockModelRoundTrip(t *testing.T) {
	tpl := DefaultTemplate()
	m := MockModel{Template: tpl}

	env, err := m.Generate(context.Background(), tpl.Build(sampleNotice))
	require.NoError(t, err)
	raw, err := env.Text()
	require.NoError(t, err)
	assert.Equal(t, raw, "```json"+StripFence(raw)+"```")

	s, err := ParseSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, "CP23", s.NoticeType)
}

func TestMockModelHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := MockModel{}.Generate(ctx, "p")
	assert.True(t, errors.Is(err, ErrTransport))
}
