package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/AliRehmantechndev/EdgeMind-backend/cmd/edgemindd/handlers"
	httptestutil "github.com/AliRehmantechndev/EdgeMind-backend/internal/testutils/http"
	apids "github.com/AliRehmantechndev/EdgeMind-backend/pkg/api/types/datasets"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/auth"
	kdb "github.com/AliRehmantechndev/EdgeMind-backend/pkg/db"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/db/mocks"
	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/cmp"
)

func multipartImages(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	for name, content := range files {
		part, err := form.CreateFormFile("images", name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := form.Close(); err != nil {
		t.Fatal(err)
	}
	return body, form.FormDataContentType()
}

func ownedDataset(t *testing.T) *mocks.DatasetInterface {
	t.Helper()
	mDataset := mocks.NewDatasetInterface()
	mDataset.Impl.Get = func(ctx context.Context, userId string, datasetId string) (kdb.Dataset, error) {
		return kdb.Dataset{Id: datasetId, Name: "traffic"}, nil
	}
	return mDataset
}

func TestUploadImagesHandler(t *testing.T) {
	t.Run("uploaded files land in storage and on the counters", func(t *testing.T) {
		mDataset := ownedDataset(t)
		mDataset.Impl.AddImages = func(ctx context.Context, userId string, datasetId string, count int, sizeBytes int64) (kdb.Dataset, error) {
			return kdb.Dataset{
				Id: datasetId, Name: "traffic",
				ImageCount: count, TotalSizeBytes: sizeBytes,
			}, nil
		}
		store := &stubStorage{files: map[string]map[string][]byte{}}

		body, ctype := multipartImages(t, map[string][]byte{
			"a.jpg": []byte("image-a"),
			"b.jpg": []byte("image-bee"),
		})
		e := echo.New()
		ctx, resp := httptestutil.Post(
			e, "/api/datasets/ds-1/images", body, httptestutil.ContentType(ctype),
		)
		ctx.SetPath("/api/datasets/:datasetId/images")
		ctx.SetParamNames("datasetId")
		ctx.SetParamValues("ds-1")
		auth.SetUserId(ctx, "user-1")

		testee := handlers.UploadImagesHandler(mDataset, store, "datasetId")
		if err := testee(ctx); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusCreated {
			t.Errorf("status = %d, want 201", resp.Code)
		}
		if got := string(store.files["ds-1"]["a.jpg"]); got != "image-a" {
			t.Errorf("stored a.jpg = %q", got)
		}
		if got := string(store.files["ds-1"]["b.jpg"]); got != "image-bee" {
			t.Errorf("stored b.jpg = %q", got)
		}

		if mDataset.Calls.AddImages.Times() != 1 {
			t.Fatalf("AddImages called %d times, want 1", mDataset.Calls.AddImages.Times())
		}
		call := mDataset.Calls.AddImages[0]
		if call.Count != 2 || call.SizeBytes != int64(len("image-a")+len("image-bee")) {
			t.Errorf("AddImages called with (%d, %d)", call.Count, call.SizeBytes)
		}

		payload := apids.UploadResult{}
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatal(err)
		}
		if payload.Uploaded != 2 {
			t.Errorf("uploaded = %d, want 2", payload.Uploaded)
		}
	})

	t.Run("an empty form is 400", func(t *testing.T) {
		mDataset := ownedDataset(t)
		store := &stubStorage{files: map[string]map[string][]byte{}}

		body, ctype := multipartImages(t, map[string][]byte{})
		e := echo.New()
		ctx, _ := httptestutil.Post(
			e, "/api/datasets/ds-1/images", body, httptestutil.ContentType(ctype),
		)
		ctx.SetPath("/api/datasets/:datasetId/images")
		ctx.SetParamNames("datasetId")
		ctx.SetParamValues("ds-1")
		auth.SetUserId(ctx, "user-1")

		err := handlers.UploadImagesHandler(mDataset, store, "datasetId")(ctx)

		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Errorf("error = %v, want 400", err)
		}
		if mDataset.Calls.AddImages.Times() != 0 {
			t.Error("counters moved without any upload")
		}
	})

	t.Run("an unowned dataset is 404 before any write", func(t *testing.T) {
		mDataset := mocks.NewDatasetInterface()
		mDataset.Impl.Get = func(ctx context.Context, userId string, datasetId string) (kdb.Dataset, error) {
			return kdb.Dataset{}, kdb.ErrMissing
		}
		store := &stubStorage{files: map[string]map[string][]byte{}}

		body, ctype := multipartImages(t, map[string][]byte{"a.jpg": []byte("x")})
		e := echo.New()
		ctx, _ := httptestutil.Post(
			e, "/api/datasets/ds-x/images", body, httptestutil.ContentType(ctype),
		)
		ctx.SetPath("/api/datasets/:datasetId/images")
		ctx.SetParamNames("datasetId")
		ctx.SetParamValues("ds-x")
		auth.SetUserId(ctx, "user-1")

		err := handlers.UploadImagesHandler(mDataset, store, "datasetId")(ctx)

		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusNotFound {
			t.Errorf("error = %v, want 404", err)
		}
		if len(store.files["ds-x"]) != 0 {
			t.Error("files were stored for an unowned dataset")
		}
	})
}

func TestListImagesHandler(t *testing.T) {
	mDataset := ownedDataset(t)
	store := &stubStorage{files: map[string]map[string][]byte{
		"ds-1": {"a.jpg": []byte("x"), "b.jpg": []byte("y")},
	}}

	e := echo.New()
	ctx, resp := httptestutil.Get(e, "/api/datasets/ds-1/images")
	ctx.SetPath("/api/datasets/:datasetId/images")
	ctx.SetParamNames("datasetId")
	ctx.SetParamValues("ds-1")
	auth.SetUserId(ctx, "user-1")

	if err := handlers.ListImagesHandler(mDataset, store, "datasetId")(ctx); err != nil {
		t.Fatal(err)
	}

	if resp.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Code)
	}
	payload := apids.FileListing{}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if !cmp.SliceContentEq(payload.Files, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("files = %v", payload.Files)
	}
}

func TestGetImageHandler(t *testing.T) {
	t.Run("a stored file is served back", func(t *testing.T) {
		mDataset := ownedDataset(t)
		store := &stubStorage{files: map[string]map[string][]byte{
			"ds-1": {"a.jpg": []byte("image-bytes")},
		}}

		e := echo.New()
		ctx, resp := httptestutil.Get(e, "/api/datasets/ds-1/images/a.jpg")
		ctx.SetPath("/api/datasets/:datasetId/images/:filename")
		ctx.SetParamNames("datasetId", "filename")
		ctx.SetParamValues("ds-1", "a.jpg")
		auth.SetUserId(ctx, "user-1")

		if err := handlers.GetImageHandler(mDataset, store, "datasetId", "filename")(ctx); err != nil {
			t.Fatal(err)
		}

		if resp.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.Code)
		}
		if got := resp.Body.String(); got != "image-bytes" {
			t.Errorf("body = %q", got)
		}
	})

	t.Run("a missing file is 404", func(t *testing.T) {
		mDataset := ownedDataset(t)
		store := &stubStorage{files: map[string]map[string][]byte{}}

		e := echo.New()
		ctx, _ := httptestutil.Get(e, "/api/datasets/ds-1/images/ghost.jpg")
		ctx.SetPath("/api/datasets/:datasetId/images/:filename")
		ctx.SetParamNames("datasetId", "filename")
		ctx.SetParamValues("ds-1", "ghost.jpg")
		auth.SetUserId(ctx, "user-1")

		err := handlers.GetImageHandler(mDataset, store, "datasetId", "filename")(ctx)

		httpErr := &echo.HTTPError{}
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusNotFound {
			t.Errorf("error = %v, want 404", err)
		}
	})
}
