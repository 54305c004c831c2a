package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/resume-builder/internal/session"
	"github.com/jdoe/resume-builder/internal/types"
)

// newTestClient returns a client pointed at a stub backend.
func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL+"/api", session.New()), srv
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, types.User{Name: "Jane"})
	}))
	defer srv.Close()

	c.Session().Begin("tok-123", nil)
	_, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoTokenWhenSignedOut(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, types.AuthResponse{Token: "t", User: &types.User{}})
	}))
	defer srv.Close()

	_, err := c.Login(context.Background(), &types.LoginRequest{Email: "jane@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedExpiresSession(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}))
	defer srv.Close()

	c.Session().Begin("stale-token", &types.User{Name: "Jane"})
	_, err := c.Profile(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, c.Session().Active(), "session is cleared on 401")
	assert.Nil(t, c.Session().User())
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "email already registered: jane@example.com"})
	}))
	defer srv.Close()

	_, err := c.Register(context.Background(), &types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "email already registered: jane@example.com", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "api error 409")
}

func TestClient_APIErrorNonJSONBody(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := c.DeleteResume(context.Background(), uuid.New())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_RegisterBeginsSession(t *testing.T) {
	user := &types.User{ID: uuid.New(), Name: "Jane", Email: "jane@example.com"}
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		writeJSON(w, http.StatusCreated, types.AuthResponse{User: user, Token: "fresh-token"})
	}))
	defer srv.Close()

	got, err := c.Register(context.Background(), &types.RegisterRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "fresh-token", c.Session().Token())
	assert.Equal(t, "Jane", c.Session().User().Name)
}

func TestClient_RegisterValidatesLocally(t *testing.T) {
	called := false
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := c.Register(context.Background(), &types.RegisterRequest{
		Name: "Jane", Email: "bad", Password: "password123",
	})
	assert.ErrorContains(t, err, "invalid registration")
	assert.False(t, called, "invalid requests never reach the backend")
}

func TestClient_Logout(t *testing.T) {
	c := New("http://unused", session.New())
	c.Session().Begin("tok", &types.User{})
	c.Logout()
	assert.False(t, c.Session().Active())
}

func TestClient_ResumeCRUD(t *testing.T) {
	id := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateResumeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, types.Resume{ID: id, Title: req.Title})
	})
	mux.HandleFunc("GET /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []types.Resume{{ID: id, Title: "First"}})
	})
	mux.HandleFunc("GET /api/resumes/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, id.String(), r.PathValue("id"))
		writeJSON(w, http.StatusOK, types.Resume{ID: id, Title: "First"})
	})
	mux.HandleFunc("PUT /api/resumes/{id}", func(w http.ResponseWriter, r *http.Request) {
		var resume types.Resume
		require.NoError(t, json.NewDecoder(r.Body).Decode(&resume))
		writeJSON(w, http.StatusOK, resume)
	})
	mux.HandleFunc("DELETE /api/resumes/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()
	ctx := context.Background()

	created, err := c.CreateResume(ctx, &types.CreateResumeRequest{Title: "First"})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)

	list, err := c.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := c.GetResume(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	created.Title = "Renamed"
	saved, err := c.UpdateResume(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", saved.Title)

	require.NoError(t, c.DeleteResume(ctx, id))
}

func TestClient_UploadResumeThumbnail(t *testing.T) {
	id := uuid.New()
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/resumes/"+id.String()+"/upload-images", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("thumbnail")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "preview.png", header.Filename)

		writeJSON(w, http.StatusOK, map[string]string{"thumbnailLink": "http://localhost:8080/uploads/thumbnails/x.png"})
	}))
	defer srv.Close()

	url, err := c.UploadResumeThumbnail(context.Background(), id, "preview.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/thumbnails/x.png", url)
}

func TestClient_CreateOrderAndVerify(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/payments/create-order", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, types.Payment{
			GatewayOrderID: "order_1",
			Amount:         99900,
			Currency:       "INR",
			Status:         types.PaymentStatusCreated,
		})
	})
	mux.HandleFunc("POST /api/payments/verify", func(w http.ResponseWriter, r *http.Request) {
		var req types.VerifyPaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "order_1", req.OrderID)
		writeJSON(w, http.StatusOK, types.VerifyPaymentResponse{
			Message: "Payment verified successfully",
			Status:  types.PaymentStatusPaid,
		})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()
	ctx := context.Background()

	payment, err := c.CreateOrder(ctx, types.SubscriptionPremium)
	require.NoError(t, err)
	assert.Equal(t, "order_1", payment.GatewayOrderID)

	resp, err := c.VerifyPayment(ctx, &types.VerifyPaymentRequest{
		OrderID: "order_1", PaymentID: "pay_1", Signature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, types.PaymentStatusPaid, resp.Status)
}

func TestClient_VerifyPaymentValidatesLocally(t *testing.T) {
	c := New("http://unused", session.New())
	_, err := c.VerifyPayment(context.Background(), &types.VerifyPaymentRequest{OrderID: "order_1"})
	assert.ErrorContains(t, err, "invalid verification")
}

func TestClient_SendResume(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "friend@example.com", r.FormValue("recipient"))
		assert.Equal(t, "My Resume", r.FormValue("subject"))
		assert.Equal(t, "Please find attached.", r.FormValue("message"))

		file, header, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "resume.pdf", header.Filename)

		writeJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
	}))
	defer srv.Close()

	err := c.SendResume(context.Background(), "friend@example.com", "My Resume", "Please find attached.", "resume.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
}

func TestClient_Templates(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/templates", r.URL.Path)
		writeJSON(w, http.StatusOK, types.TemplatesResponse{
			AllTemplates:       []string{"Classic Blue", "ATS Clean"},
			AvailableTemplates: []string{"Classic Blue"},
			SubscriptionPlan:   "Free",
		})
	}))
	defer srv.Close()

	resp, err := c.Templates(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.AllTemplates, 2)
	assert.Equal(t, []string{"Classic Blue"}, resp.AvailableTemplates)
}

func TestClient_Dashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.User{Name: "Jane"})
	})
	mux.HandleFunc("GET /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []types.Resume{{Title: "First"}, {Title: "Second"}})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	snap, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane", snap.User.Name)
	assert.Len(t, snap.Resumes, 2)
}

func TestClient_DashboardFailsOnEitherError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.User{Name: "Jane"})
	})
	mux.HandleFunc("GET /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	})

	c, srv := newTestClient(mux)
	defer srv.Close()

	_, err := c.Dashboard(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}
