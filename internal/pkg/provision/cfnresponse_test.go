package provision

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/matryer/is"
)

func TestSendPutsResponseBodyToCallbackURL(t *testing.T) {
	is := is.New(t)

	var method, contentType string
	var body []byte

	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
	}))
	defer callback.Close()

	event := cfn.Event{
		RequestType:       cfn.RequestCreate,
		ResponseURL:       callback.URL,
		StackID:           "arn:aws:cloudformation:eu-north-1:123456789012:stack/test/guid",
		RequestID:         "request-1",
		LogicalResourceID: "PostGISExtension",
	}

	err := NewCallbackSender().Send(context.Background(), event, StatusSuccess, "done", "postgis-extension-test", map[string]string{"PostGISVersion": "3.4"})
	is.NoErr(err)

	is.Equal(method, http.MethodPut)
	is.Equal(contentType, "")

	var resp Response
	is.NoErr(json.Unmarshal(body, &resp))
	is.Equal(resp.Status, StatusSuccess)
	is.Equal(resp.PhysicalResourceID, "postgis-extension-test")
	is.Equal(resp.StackID, event.StackID)
	is.Equal(resp.RequestID, event.RequestID)
	is.Equal(resp.LogicalResourceID, event.LogicalResourceID)
	is.Equal(resp.Data["PostGISVersion"], "3.4")
}

func TestSendReportsNonSuccessCallbackStatus(t *testing.T) {
	is := is.New(t)

	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer callback.Close()

	event := cfn.Event{ResponseURL: callback.URL}

	err := NewCallbackSender().Send(context.Background(), event, StatusFailed, "boom", "id", nil)
	is.True(err != nil)
}

func TestSendDefaultsDataToEmptyObject(t *testing.T) {
	is := is.New(t)

	var body []byte
	callback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
	}))
	defer callback.Close()

	event := cfn.Event{ResponseURL: callback.URL}

	is.NoErr(NewCallbackSender().Send(context.Background(), event, StatusSuccess, "", "id", nil))

	var raw map[string]json.RawMessage
	is.NoErr(json.Unmarshal(body, &raw))
	is.Equal(string(raw["Data"]), "{}")
}
