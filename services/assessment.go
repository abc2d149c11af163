package services

import (
	"context"
	"fmt"
	"log"

	"recaptcharelay/model"

	recaptchapb "cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/googleapis/gax-go/v2"
)

// AssessmentClient is the part of the reCAPTCHA Enterprise client the relay uses.
// *recaptcha.Client satisfies it.
type AssessmentClient interface {
	CreateAssessment(ctx context.Context, req *recaptchapb.CreateAssessmentRequest, opts ...gax.CallOption) (*recaptchapb.Assessment, error)
	Close() error
}

// ClientFactory builds a client for a single assessment. The caller owns the
// returned client and must close it.
type ClientFactory func(ctx context.Context) (AssessmentClient, error)

func ProjectPath(projectID string) string {
	return fmt.Sprintf("projects/%s", projectID)
}

func NewAssessmentRequest(projectID, siteKey, token string) *recaptchapb.CreateAssessmentRequest {
	return &recaptchapb.CreateAssessmentRequest{
		Assessment: &recaptchapb.Assessment{
			Event: &recaptchapb.Event{
				Token:   token,
				SiteKey: siteKey,
			},
		},
		Parent: ProjectPath(projectID),
	}
}

// CreateAssessment asks reCAPTCHA Enterprise to assess token and returns its
// score, or nil when the token is invalid or was generated for another action.
// Only client errors are returned, unmodified.
func CreateAssessment(ctx context.Context, newClient ClientFactory, projectID, siteKey, token, action string) (*float32, error) {
	client, err := newClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	response, err := client.CreateAssessment(ctx, NewAssessmentRequest(projectID, siteKey, token))
	if err != nil {
		return nil, err
	}

	return Interpret(ToAssessment(response), action), nil
}

func ToAssessment(response *recaptchapb.Assessment) model.Assessment {
	tokenProperties := response.GetTokenProperties()
	riskAnalysis := response.GetRiskAnalysis()

	reasons := make([]string, 0, len(riskAnalysis.GetReasons()))
	for _, reason := range riskAnalysis.GetReasons() {
		reasons = append(reasons, reason.String())
	}

	return model.Assessment{
		Valid:         tokenProperties.GetValid(),
		InvalidReason: tokenProperties.GetInvalidReason().String(),
		Action:        tokenProperties.GetAction(),
		Score:         riskAnalysis.GetScore(),
		Reasons:       reasons,
	}
}

func Interpret(assessment model.Assessment, expectedAction string) *float32 {
	if !assessment.Valid {
		log.Printf("The CreateAssessment call failed because the token was: %s", assessment.InvalidReason)
		return nil
	}

	if assessment.Action != expectedAction {
		log.Println("The action attribute in your reCAPTCHA tag does not match the action you are expecting to score")
		return nil
	}

	log.Printf("The reCAPTCHA score is: %v", assessment.Score)
	for _, reason := range assessment.Reasons {
		log.Println(reason)
	}

	score := assessment.Score
	return &score
}
