package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/shared/biztime"
	"helpcenter/internal/shared/errors"
)

// steppingClock advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func assertPublicationInvariant(t *testing.T, p Publishable) {
	t.Helper()
	assert.Equal(t, p.Status() == StatusPublished, p.PublishedAt() != nil,
		"status %s with publishedAt %v", p.Status(), p.PublishedAt())
}

func statusPtr(s Status) *Status { return &s }

func TestPublicationPolicy_DraftPublishDraftPublish(t *testing.T) {
	policy := NewPublicationPolicy(steppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	a := &Publication{}
	policy.Initialize(a, nil)
	assert.Equal(t, StatusDraft, a.Status())
	assertPublicationInvariant(t, a)

	first := policy.Publish(a)
	require.NotNil(t, first.PublishedAt)
	assertPublicationInvariant(t, a)

	_, err := policy.Unpublish(a, StatusDraft)
	require.NoError(t, err)
	assertPublicationInvariant(t, a)

	second := policy.Publish(a)
	require.NotNil(t, second.PublishedAt)
	assert.True(t, second.PublishedAt.After(*first.PublishedAt))
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_InitializePublished(t *testing.T) {
	policy := NewPublicationPolicy(nil)
	g := &Publication{}
	tr := policy.Initialize(g, statusPtr(StatusPublished))

	assert.Equal(t, StatusPublished, tr.To)
	assertPublicationInvariant(t, g)
}

func TestPublicationPolicy_PublishOverwritesTimestamp(t *testing.T) {
	policy := NewPublicationPolicy(steppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	v := &Publication{}
	first := policy.Publish(v)
	second := policy.Publish(v)

	assert.True(t, second.PublishedAt.After(*first.PublishedAt))
	assert.False(t, second.Changed())
}

func TestPublicationPolicy_EditKeepsOriginalPublishTime(t *testing.T) {
	policy := NewPublicationPolicy(steppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	a := &Publication{}
	published := policy.Publish(a)

	tr := policy.ApplyEdit(a, statusPtr(StatusPublished))
	assert.Equal(t, *published.PublishedAt, *tr.PublishedAt)

	tr = policy.ApplyEdit(a, nil)
	assert.Equal(t, *published.PublishedAt, *tr.PublishedAt)
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_EditToPublishedStampsWhenUnset(t *testing.T) {
	policy := NewPublicationPolicy(nil)
	a := &Publication{}
	policy.Initialize(a, nil)

	tr := policy.ApplyEdit(a, statusPtr(StatusPublished))
	assert.Equal(t, StatusDraft, tr.From)
	assert.NotNil(t, tr.PublishedAt)
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_EditAwayClears(t *testing.T) {
	policy := NewPublicationPolicy(nil)
	a := &Publication{}
	policy.Publish(a)

	policy.ApplyEdit(a, statusPtr(StatusArchived))
	assert.Equal(t, StatusArchived, a.Status())
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_UnpublishTargets(t *testing.T) {
	policy := NewPublicationPolicy(nil)
	a := &Publication{}
	policy.Publish(a)

	_, err := policy.Unpublish(a, StatusPublished)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Equal(t, StatusPublished, a.Status())

	tr, err := policy.Unpublish(a, StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, tr.From)
	assert.Nil(t, tr.PublishedAt)
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_ArchiveAndRestore(t *testing.T) {
	policy := NewPublicationPolicy(nil)
	a := &Publication{}
	policy.Publish(a)

	policy.Archive(a)
	assert.Equal(t, StatusArchived, a.Status())
	assertPublicationInvariant(t, a)

	policy.Publish(a)
	assert.Equal(t, StatusPublished, a.Status())
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_InvariantHoldsForEveryEntity(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	article, err := NewArticle(ArticleParams{Title: "Refunds", Body: "How refunds work"}, now)
	require.NoError(t, err)
	guide, err := NewGuide(GuideParams{Title: "Open a shop", Steps: []GuideStep{{Title: "Verify"}}}, now)
	require.NoError(t, err)
	video, err := NewVideo(VideoParams{Title: "Packing", VideoURL: "https://cdn.example.com/p.mp4"}, now)
	require.NoError(t, err)

	policy := NewPublicationPolicy(steppingClock(now))
	for _, e := range []Publishable{article, guide, video} {
		policy.Initialize(e, nil)
		assertPublicationInvariant(t, e)
		policy.Publish(e)
		assertPublicationInvariant(t, e)
		policy.ApplyEdit(e, statusPtr(StatusDraft))
		assertPublicationInvariant(t, e)
		policy.Archive(e)
		assertPublicationInvariant(t, e)
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("published")
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, s)

	_, err = ParseStatus("LIVE")
	assert.True(t, errors.IsInvalidTransitionError(err))

	none, err := ParseOptionalStatus("")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestParseAudience_CoercesUnknown(t *testing.T) {
	assert.Equal(t, AudienceVendor, ParseAudience("vendor"))
	assert.Equal(t, AudienceAll, ParseAudience("martians"))
	assert.Equal(t, AudienceAll, ParseAudience(""))
}

func TestPublicationPolicy_RepublishWithinSameMillisecond(t *testing.T) {
	policy := NewPublicationPolicy(biztime.FixedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
	a := &Publication{}
	policy.Initialize(a, nil)

	first := policy.Publish(a)
	policy.ApplyEdit(a, statusPtr(StatusDraft))
	assert.Nil(t, a.PublishedAt())
	second := policy.Publish(a)
	_, err := policy.Unpublish(a, StatusArchived)
	require.NoError(t, err)
	third := policy.Publish(a)

	require.NotNil(t, first.PublishedAt)
	require.NotNil(t, second.PublishedAt)
	require.NotNil(t, third.PublishedAt)
	assert.Equal(t, first.PublishedAt.Add(time.Millisecond), *second.PublishedAt)
	assert.True(t, third.PublishedAt.After(*second.PublishedAt))
	assertPublicationInvariant(t, a)
}

func TestPublicationPolicy_RepublishWithSystemClock(t *testing.T) {
	policy := NewPublicationPolicy(biztime.SystemClock)
	for i := 0; i < 200; i++ {
		a := &Publication{}
		policy.Initialize(a, nil)
		first := policy.Publish(a)
		policy.ApplyEdit(a, statusPtr(StatusDraft))
		second := policy.Publish(a)
		require.True(t, second.PublishedAt.After(*first.PublishedAt), "run %d", i)
	}
}

func TestPublicationPolicy_RepublishAfterReload(t *testing.T) {
	clock := biztime.FixedClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	policy := NewPublicationPolicy(clock)

	a := &Publication{}
	first := policy.Publish(a)
	policy.ApplyEdit(a, statusPtr(StatusDraft))

	reloaded := ReconstructPublicationWithHistory(a.Status(), a.PublishedAt(), a.LastPublishedAt())
	assert.Nil(t, reloaded.PublishedAt())
	require.NotNil(t, reloaded.LastPublishedAt())

	second := policy.Publish(&reloaded)
	assert.True(t, second.PublishedAt.After(*first.PublishedAt))
}
