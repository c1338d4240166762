package content

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentdto "helpcenter/internal/application/content/dto"
	"helpcenter/internal/application/content/usecases"
	"helpcenter/internal/interfaces/http/handlers/testutil"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
)

type mockGetArticleUC struct {
	result *contentdto.ArticleDTO
	err    error
	got    usecases.GetContentQuery
}

func (m *mockGetArticleUC) Execute(_ context.Context, q usecases.GetContentQuery) (*contentdto.ArticleDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockListArticlesUC struct {
	result *usecases.ListContentResult[*contentdto.ArticleDTO]
	err    error
	got    usecases.ListContentQuery
}

func (m *mockListArticlesUC) Execute(_ context.Context, q usecases.ListContentQuery) (*usecases.ListContentResult[*contentdto.ArticleDTO], error) {
	m.got = q
	return m.result, m.err
}

type mockPublicationUC struct {
	result *contentdto.PublicationDTO
	err    error
	got    usecases.ChangePublicationCommand
}

func (m *mockPublicationUC) Execute(_ context.Context, cmd usecases.ChangePublicationCommand) (*contentdto.PublicationDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockCreateGuideUC struct {
	result *contentdto.GuideDTO
	err    error
	got    usecases.CreateGuideCommand
}

func (m *mockCreateGuideUC) Execute(_ context.Context, cmd usecases.CreateGuideCommand) (*contentdto.GuideDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateGuideUC struct {
	result *contentdto.GuideDTO
	err    error
	got    usecases.UpdateGuideCommand
}

func (m *mockUpdateGuideUC) Execute(_ context.Context, cmd usecases.UpdateGuideCommand) (*contentdto.GuideDTO, error) {
	m.got = cmd
	return m.result, m.err
}

func newArticleContentHandler(get *mockGetArticleUC, list *mockListArticlesUC, pub *mockPublicationUC) *ContentHandler[*contentdto.ArticleDTO] {
	return NewContentHandler[*contentdto.ArticleDTO]("article", get, list, pub, testutil.NewMockLogger())
}

func TestContentHandler_GetPublished(t *testing.T) {
	get := &mockGetArticleUC{result: &contentdto.ArticleDTO{ID: 3, Slug: "refund-policy", Status: "PUBLISHED"}}
	handler := newArticleContentHandler(get, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/articles/refund-policy", nil)
	testutil.SetURLParam(c, "slug", "refund-policy")

	handler.GetPublished(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "refund-policy", get.got.Slug)
	assert.False(t, get.got.IncludeUnpublished)
}

func TestContentHandler_GetPublished_MalformedSlugIsNotFound(t *testing.T) {
	get := &mockGetArticleUC{}
	handler := newArticleContentHandler(get, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/articles/Not_A_Slug", nil)
	testutil.SetURLParam(c, "slug", "Not_A_Slug")

	handler.GetPublished(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, get.got.Slug)
}

func TestContentHandler_ListPublishedIgnoresStatus(t *testing.T) {
	list := &mockListArticlesUC{result: &usecases.ListContentResult[*contentdto.ArticleDTO]{
		Items:    []*contentdto.ArticleDTO{{ID: 1}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}}
	handler := newArticleContentHandler(nil, list, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/articles", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "DRAFT", "audience": "VENDOR", "q": " refund "})

	handler.ListPublished(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, list.got.PublicOnly)
	assert.Empty(t, list.got.Status)
	assert.Equal(t, "VENDOR", list.got.Audience)
	assert.Equal(t, "refund", list.got.Query)
}

func TestContentHandler_AdminListPassesStatus(t *testing.T) {
	list := &mockListArticlesUC{result: &usecases.ListContentResult[*contentdto.ArticleDTO]{Page: 1, PageSize: 20}}
	handler := newArticleContentHandler(nil, list, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/articles", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "DRAFT"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.AdminList(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, list.got.PublicOnly)
	assert.Equal(t, "DRAFT", list.got.Status)
}

func TestContentHandler_AdminGet_InvalidID(t *testing.T) {
	handler := newArticleContentHandler(&mockGetArticleUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/admin/articles/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.AdminGet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentHandler_Lifecycle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAction usecases.PublicationAction
		wantTarget string
	}{
		{name: "publish", wantAction: usecases.ActionPublish},
		{name: "unpublish to draft", wantAction: usecases.ActionUnpublish},
		{name: "unpublish to archived", body: `{"target":"ARCHIVED"}`, wantAction: usecases.ActionUnpublish, wantTarget: "ARCHIVED"},
		{name: "archive", wantAction: usecases.ActionArchive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &mockPublicationUC{result: &contentdto.PublicationDTO{ID: 12, Kind: "article"}}
			handler := newArticleContentHandler(nil, nil, pub)

			c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/articles/12/x", nil)
			if tt.body != "" {
				req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/articles/12/unpublish", bytes.NewBufferString(tt.body))
				req.Header.Set("Content-Type", "application/json")
				c.Request = req
			}
			testutil.SetURLParam(c, "id", "12")
			testutil.SetAuthContext(c, 1, constants.RoleAdmin)

			switch tt.wantAction {
			case usecases.ActionPublish:
				handler.Publish(c)
			case usecases.ActionUnpublish:
				handler.Unpublish(c)
			case usecases.ActionArchive:
				handler.Archive(c)
			}

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, uint(12), pub.got.ID)
			assert.Equal(t, tt.wantAction, pub.got.Action)
			assert.Equal(t, tt.wantTarget, pub.got.Target)
			assert.Equal(t, uint(1), pub.got.ActorID)
		})
	}
}

func TestContentHandler_Publish_InvalidTransition(t *testing.T) {
	pub := &mockPublicationUC{err: errors.NewInvalidTransitionError("cannot publish archived article")}
	handler := newArticleContentHandler(nil, nil, pub)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/articles/12/publish", nil)
	testutil.SetURLParam(c, "id", "12")

	handler.Publish(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGuideHandler_Create(t *testing.T) {
	createUC := &mockCreateGuideUC{result: &contentdto.GuideDTO{ID: 4, Slug: "store-setup"}}
	handler := NewGuideHandler(createUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/guides", CreateGuideRequest{
		Title:    "Store setup",
		Audience: "VENDOR",
		Steps:    []GuideStepRequest{{Title: "Profile"}, {Title: "Payouts"}},
	})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, createUC.got.Steps, 2)
	assert.Equal(t, "Payouts", createUC.got.Steps[1].Title)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got contentdto.GuideDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "store-setup", got.Slug)
}

func TestGuideHandler_Create_RequiresSteps(t *testing.T) {
	handler := NewGuideHandler(&mockCreateGuideUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/admin/guides", CreateGuideRequest{Title: "Empty"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuideHandler_Update_PartialPatch(t *testing.T) {
	updateUC := &mockUpdateGuideUC{result: &contentdto.GuideDTO{ID: 4}}
	handler := NewGuideHandler(nil, updateUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/admin/guides/4", map[string]string{"title": "Store setup, revised"})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)

	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updateUC.got.Title)
	assert.Equal(t, "Store setup, revised", *updateUC.got.Title)
	assert.Nil(t, updateUC.got.Description)
	assert.Nil(t, updateUC.got.Steps)
	assert.Equal(t, uint(4), updateUC.got.ID)
}
