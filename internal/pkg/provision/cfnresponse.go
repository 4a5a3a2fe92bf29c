package provision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/cfn"
)

const StatusSuccess string = "SUCCESS"
const StatusFailed string = "FAILED"

// Response is the body that CloudFormation expects to receive on the
// presigned callback URL of a custom resource event.
type Response struct {
	Status             string            `json:"Status"`
	Reason             string            `json:"Reason"`
	PhysicalResourceID string            `json:"PhysicalResourceId"`
	StackID            string            `json:"StackId"`
	RequestID          string            `json:"RequestId"`
	LogicalResourceID  string            `json:"LogicalResourceId"`
	NoEcho             bool              `json:"NoEcho"`
	Data               map[string]string `json:"Data"`
}

// CallbackSender reports provisioning outcomes back to CloudFormation
// with a single PUT to the response URL carried by the event.
type CallbackSender struct {
	httpClient http.Client
}

func NewCallbackSender() *CallbackSender {
	return &CallbackSender{
		httpClient: http.Client{Timeout: 30 * time.Second},
	}
}

func (s *CallbackSender) Send(ctx context.Context, event cfn.Event, status, reason, physicalResourceID string, data map[string]string) error {
	if data == nil {
		data = map[string]string{}
	}

	body, err := json.Marshal(Response{
		Status:             status,
		Reason:             reason,
		PhysicalResourceID: physicalResourceID,
		StackID:            event.StackID,
		RequestID:          event.RequestID,
		LogicalResourceID:  event.LogicalResourceID,
		NoEcho:             false,
		Data:               data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, event.ResponseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create callback request: %w", err)
	}

	// the presigned callback URL is signed with an empty content type
	req.Header.Set("Content-Type", "")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send callback response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("callback endpoint returned status code %d", resp.StatusCode)
	}

	return nil
}
