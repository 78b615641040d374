// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient creates a Client backed by the given httptest.Server.
func newTestClient(t *testing.T, server *httptest.Server, token string) *Client {
	t.Helper()
	config := Config{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}
	if token != "" {
		config.TokenSource = StaticToken(token)
	}
	client, err := NewClient(config)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClient_BaseURLRequired(t *testing.T) {
	_, err := NewClient(Config{})
	if err == nil {
		t.Fatal("expected error for missing base URL")
	}
}

func TestNewClient_HTTPSEnforcement(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://reservas.example.edu"})
	if err == nil {
		t.Fatal("expected error for HTTP URL")
	}
	if got := err.Error(); got != `booking: API client requires HTTPS (got "http://reservas.example.edu")` {
		t.Errorf("unexpected error: %s", got)
	}
}

func TestClient_AuthHeaderInjection(t *testing.T) {
	var receivedAuth string
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "test-token")
	if _, err := client.ListBookings(context.Background()); err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer test-token")
	}
}

func TestClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	var sawHeader bool
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, sawHeader = request.Header["Authorization"]
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	if _, err := client.ListBookings(context.Background()); err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if sawHeader {
		t.Error("Authorization header sent without a token")
	}
}

func TestClient_EndpointPaths(t *testing.T) {
	// The paths are a fixed contract with the remote services; any
	// drift breaks the deployment.
	tests := []struct {
		name       string
		call       func(client *Client) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "list bookings",
			call: func(client *Client) error {
				_, err := client.ListBookings(context.Background())
				return err
			},
			wantMethod: "GET",
			wantPath:   "/booking-service/bookings",
		},
		{
			name: "my reservations",
			call: func(client *Client) error {
				_, err := client.MyReservations(context.Background())
				return err
			},
			wantMethod: "GET",
			wantPath:   "/booking-service/my-reservations",
		},
		{
			name: "get booking",
			call: func(client *Client) error {
				_, err := client.GetBooking(context.Background(), "bk-7")
				return err
			},
			wantMethod: "GET",
			wantPath:   "/booking-service/bookings/bk-7",
		},
		{
			name: "make reservation",
			call: func(client *Client) error {
				return client.MakeReservation(context.Background(), "bk-7")
			},
			wantMethod: "PUT",
			wantPath:   "/booking-service/bookings/make/bk-7",
		},
		{
			name: "cancel reservation",
			call: func(client *Client) error {
				return client.CancelReservation(context.Background(), "bk-7")
			},
			wantMethod: "PUT",
			wantPath:   "/booking-service/bookings/cancel/bk-7",
		},
		{
			name: "delete booking",
			call: func(client *Client) error {
				return client.DeleteBooking(context.Background(), "bk-7")
			},
			wantMethod: "DELETE",
			wantPath:   "/booking-service/bookings/bk-7",
		},
		{
			name: "list users",
			call: func(client *Client) error {
				_, err := client.ListUsers(context.Background())
				return err
			},
			wantMethod: "GET",
			wantPath:   "/user-service/users",
		},
		{
			name: "delete user",
			call: func(client *Client) error {
				return client.DeleteUser(context.Background(), "ana")
			},
			wantMethod: "DELETE",
			wantPath:   "/user-service/users/ana",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotMethod, gotPath string
			server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				gotMethod = request.Method
				gotPath = request.URL.Path
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := newTestClient(t, server, "tok")
			if err := test.call(client); err != nil {
				t.Fatalf("call: %v", err)
			}
			if gotMethod != test.wantMethod || gotPath != test.wantPath {
				t.Errorf("request = %s %s, want %s %s", gotMethod, gotPath, test.wantMethod, test.wantPath)
			}
		})
	}
}

func TestClient_ListBookingsDecodesSnapshot(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[
			{"bookingId":"1","bookingDate":"2026-03-10","bookingTime":"10:00","bookingClassRoom":"Lab 1","priority":2,"disable":true,"reservedBy":null},
			{"bookingId":"2","bookingDate":"2026-03-10","bookingTime":"12:00","bookingClassRoom":"Aula 2","priority":5,"disable":false,"reservedBy":"ana"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	bookings, err := client.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(bookings))
	}
	if !bookings[0].Available() {
		t.Error("booking 1 should be available (disable:true)")
	}
	if bookings[1].Available() {
		t.Error("booking 2 should be reserved (disable:false)")
	}
	if bookings[0].ReservedBy != "" {
		t.Errorf("ReservedBy = %q, want empty for null", bookings[0].ReservedBy)
	}
	if bookings[1].ReservedBy != "ana" {
		t.Errorf("ReservedBy = %q, want %q", bookings[1].ReservedBy, "ana")
	}
}

func TestClient_ServerErrorMessage(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		json.NewEncoder(writer).Encode(map[string]string{"message": "no existe"})
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	err := client.CancelReservation(context.Background(), "9")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for 404: %v", err)
	}
	if got := ServerMessage(err); got != "no existe" {
		t.Errorf("ServerMessage = %q, want %q", got, "no existe")
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	_, err := client.ListBookings(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ServerMessage(err); got != "upstream unavailable" {
		t.Errorf("ServerMessage = %q, want raw body", got)
	}
}

func TestClient_EmptySuccessBody(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	if err := client.MakeReservation(context.Background(), "1"); err != nil {
		t.Fatalf("MakeReservation with empty body: %v", err)
	}
}

func TestClient_GenerateBookings(t *testing.T) {
	var gotQuery string
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotQuery = request.URL.RawQuery
		if request.URL.Path != "/generate-service/generate-bookings" {
			t.Errorf("path = %s", request.URL.Path)
		}
		json.NewEncoder(writer).Encode(GenerateResult{Message: "ok", TotalGenerated: 250})
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	result, err := client.GenerateBookings(context.Background(), 100, 1000)
	if err != nil {
		t.Fatalf("GenerateBookings: %v", err)
	}
	if gotQuery != "min=100&max=1000" {
		t.Errorf("query = %q, want min=100&max=1000", gotQuery)
	}
	if result.TotalGenerated != 250 {
		t.Errorf("TotalGenerated = %d, want 250", result.TotalGenerated)
	}
}

func TestClient_GenerateBookingsValidatesRange(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request should be issued for an invalid range")
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	if _, err := client.GenerateBookings(context.Background(), 0, 10); err == nil {
		t.Error("expected error for min below 1")
	}
	if _, err := client.GenerateBookings(context.Background(), 100, 10); err == nil {
		t.Error("expected error for max below min")
	}
}

func TestClient_LoginReturnsToken(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/user-service/login" {
			t.Errorf("path = %s", request.URL.Path)
		}
		var credentials Credentials
		json.NewDecoder(request.Body).Decode(&credentials)
		if credentials.UserID != "ana" {
			t.Errorf("userId = %q", credentials.UserID)
		}
		json.NewEncoder(writer).Encode(LoginResult{Token: "jwt-abc"})
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	result, err := client.Login(context.Background(), Credentials{UserID: "ana", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "jwt-abc" {
		t.Errorf("Token = %q", result.Token)
	}
}

func TestClient_RegisterRejectsMismatchLocally(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Error("no request should be issued for a password mismatch")
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	err := client.Register(context.Background(), Registration{
		UserID:               "ana",
		Email:                "ana@example.edu",
		Password:             "one",
		PasswordConfirmation: "two",
	})
	if err == nil {
		t.Fatal("expected local validation error")
	}
}
