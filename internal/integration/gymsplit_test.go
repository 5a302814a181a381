//go:build integration_test || all_tests

package integration_test

import (
	"net/http"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/customizations"
	"github.com/2beens/gymsplit/internal/exercises"
	"github.com/2beens/gymsplit/internal/plan"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/users"
	"github.com/2beens/gymsplit/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
)

func (s *IntegrationTestSuite) signup(splitType schedule.SplitType) users.AuthResponse {
	var resp users.AuthResponse
	status := s.doRequest(http.MethodPost, "/api/auth/signup", "", users.SignupParams{
		Email:     gofakeit.Email(),
		Password:  "s3cret-pass",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		SplitType: splitType,
	}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().NotEmpty(resp.Token)
	return resp
}

func (s *IntegrationTestSuite) TestSignupAndLogin() {
	email := gofakeit.Email()
	params := users.SignupParams{
		Email:     email,
		Password:  "s3cret-pass",
		FirstName: "Jane",
		LastName:  "Doe",
		SplitType: 4,
	}

	var signupResp users.AuthResponse
	s.Require().Equal(http.StatusCreated, s.doRequest(http.MethodPost, "/api/auth/signup", "", params, &signupResp))
	s.Equal(1, signupResp.User.CurrentPhase)
	s.Equal(1, signupResp.User.CurrentWeek)

	var errResp apperr.ErrorResponse
	s.Equal(http.StatusConflict, s.doRequest(http.MethodPost, "/api/auth/signup", "", params, &errResp))
	s.Equal(apperr.CodeEmailExists, errResp.Code)

	params.Email = gofakeit.Email()
	params.SplitType = 6
	s.Equal(http.StatusBadRequest, s.doRequest(http.MethodPost, "/api/auth/signup", "", params, &errResp))
	s.Equal(apperr.CodeValidation, errResp.Code)

	// the rejected signup left no user behind
	s.Equal(http.StatusUnauthorized, s.doRequest(http.MethodPost, "/api/auth/login", "", users.LoginParams{
		Email:    params.Email,
		Password: params.Password,
	}, &errResp))
	s.Equal(apperr.CodeInvalidCredentials, errResp.Code)

	var loginResp users.AuthResponse
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodPost, "/api/auth/login", "", users.LoginParams{
		Email:    email,
		Password: "s3cret-pass",
	}, &loginResp))
	s.NotEmpty(loginResp.Token)

	var meResp users.AuthResponse
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/auth/me", loginResp.Token, nil, &meResp))
	s.Equal(email, meResp.User.Email)

	s.Equal(http.StatusOK, s.doRequest(http.MethodPost, "/api/auth/logout", loginResp.Token, nil, nil))
	s.Equal(http.StatusUnauthorized, s.doRequest(http.MethodGet, "/api/auth/me", loginResp.Token, nil, nil))
}

func (s *IntegrationTestSuite) TestExercises() {
	token := s.signup(3).Token

	var listResp exercises.ListResponse
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/exercises", token, nil, &listResp))
	s.Len(listResp.Data, len(exercises.Catalog()))

	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/exercises?category=legs&type=primary", token, nil, &listResp))
	s.Len(listResp.Data, 3)

	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/exercises?category=arms", token, nil, &listResp))
	s.Empty(listResp.Data)

	var getResp exercises.GetResponse
	benchID := exercises.IDForName("Barbell Bench Press")
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/exercises/"+benchID.String(), token, nil, &getResp))
	s.Equal("Barbell Bench Press", getResp.Data.Name)
}

func (s *IntegrationTestSuite) TestPlanAndSession() {
	token := s.signup(3).Token

	var planResp plan.Response
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/user/plan", token, nil, &planResp))
	s.Require().Len(planResp.Plan.Workouts, 3)
	for i, name := range []string{schedule.WorkoutPush, schedule.WorkoutPull, schedule.WorkoutLegs} {
		s.Equal(i+1, planResp.Plan.Workouts[i].DayNumber)
		s.Equal(name, planResp.Plan.Workouts[i].WorkoutName)
		s.Len(planResp.Plan.Workouts[i].Exercises, 3)
	}

	pushDay := planResp.Plan.Workouts[0]
	var sessionResp workouts.SessionResponse
	s.Require().Equal(http.StatusCreated, s.doRequest(http.MethodPost, "/api/workouts/sessions", token, workouts.StartParams{
		UserWorkoutSplitID: pushDay.ID.String(),
	}, &sessionResp))
	sessionID := sessionResp.Session.ID.String()
	s.Equal(workouts.StatusInProgress, sessionResp.Session.Status)

	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/workouts/sessions/"+sessionID, token, nil, &sessionResp))
	s.Empty(sessionResp.Session.SetRecords)

	exerciseID := pushDay.Exercises[0].ExerciseID.String()
	setNumber, reps, weight := 1, 8, 60.0
	var setResp workouts.SetRecordResponse
	s.Require().Equal(http.StatusCreated, s.doRequest(http.MethodPost, "/api/workouts/sessions/"+sessionID+"/set-record", token, workouts.RecordSetParams{
		ExerciseID:    &exerciseID,
		SetNumber:     &setNumber,
		RepsCompleted: &reps,
		WeightUsed:    &weight,
	}, &setResp))
	s.Nil(setResp.SetRecord.RPE)

	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/workouts/sessions/"+sessionID, token, nil, &sessionResp))
	s.Require().Len(sessionResp.Session.SetRecords, 1)
	s.Equal(pushDay.Exercises[0].ExerciseID, sessionResp.Session.SetRecords[0].ExerciseID)
	s.Equal(8, sessionResp.Session.SetRecords[0].RepsCompleted)
	s.Equal(60.0, sessionResp.Session.SetRecords[0].WeightUsed)

	notes := "good session"
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodPost, "/api/workouts/sessions/"+sessionID+"/complete", token, workouts.CompleteParams{
		Notes: &notes,
	}, &sessionResp))
	s.Equal(workouts.StatusCompleted, sessionResp.Session.Status)
	s.NotNil(sessionResp.Session.CompletedAt)

	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/workouts/sessions/"+sessionID, token, nil, &sessionResp))
	s.Equal(workouts.StatusCompleted, sessionResp.Session.Status)
	s.Require().NotNil(sessionResp.Session.Notes)
	s.Equal("good session", *sessionResp.Session.Notes)
	s.Require().NotNil(sessionResp.Session.CompletedAt)
	completedAt := *sessionResp.Session.CompletedAt

	// completing again keeps the stored completion untouched
	otherNotes := "second try"
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodPost, "/api/workouts/sessions/"+sessionID+"/complete", token, workouts.CompleteParams{
		Notes: &otherNotes,
	}, &sessionResp))
	s.Equal(workouts.StatusCompleted, sessionResp.Session.Status)
	s.Require().NotNil(sessionResp.Session.CompletedAt)
	s.True(completedAt.Equal(*sessionResp.Session.CompletedAt))
	s.Require().NotNil(sessionResp.Session.Notes)
	s.Equal("good session", *sessionResp.Session.Notes)

	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/workouts/sessions/"+sessionID, token, nil, &sessionResp))
	s.True(completedAt.Equal(*sessionResp.Session.CompletedAt))
	s.Equal("good session", *sessionResp.Session.Notes)

	var errResp apperr.ErrorResponse
	s.Equal(http.StatusConflict, s.doRequest(http.MethodPost, "/api/workouts/sessions/"+sessionID+"/set-record", token, workouts.RecordSetParams{
		ExerciseID:    &exerciseID,
		SetNumber:     &setNumber,
		RepsCompleted: &reps,
		WeightUsed:    &weight,
	}, &errResp))
	s.Equal(apperr.CodeSessionCompleted, errResp.Code)

	// sessions of another user are not visible
	otherToken := s.signup(5).Token
	s.Equal(http.StatusNotFound, s.doRequest(http.MethodGet, "/api/workouts/sessions/"+sessionID, otherToken, nil, nil))
	s.Equal(http.StatusNotFound, s.doRequest(http.MethodPost, "/api/workouts/sessions", otherToken, workouts.StartParams{
		UserWorkoutSplitID: pushDay.ID.String(),
	}, nil))
}

func (s *IntegrationTestSuite) TestCustomizations() {
	token := s.signup(3).Token
	legCurl := exercises.IDForName("Leg Curl")
	seatedLegCurl := exercises.IDForName("Seated Leg Curl")

	var createResp customizations.CreateResponse
	s.Require().Equal(http.StatusCreated, s.doRequest(http.MethodPost, "/api/user/customizations", token, customizations.CreateParams{
		OriginalExerciseID:    legCurl.String(),
		ReplacementExerciseID: seatedLegCurl.String(),
	}, &createResp))

	var listResp customizations.ListResponse
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/user/customizations", token, nil, &listResp))
	s.Require().Len(listResp.Customizations, 1)
	s.Require().NotNil(listResp.Customizations[0].ReplacementExercise)
	s.Equal("Seated Leg Curl", listResp.Customizations[0].ReplacementExercise.Name)

	var planResp plan.Response
	s.Require().Equal(http.StatusOK, s.doRequest(http.MethodGet, "/api/user/plan", token, nil, &planResp))
	legs := planResp.Plan.Workouts[2]
	s.Equal("Seated Leg Curl", legs.Exercises[2].ExerciseName)
	s.Require().NotNil(legs.Exercises[2].OriginalExerciseID)
	s.Equal(legCurl, *legs.Exercises[2].OriginalExerciseID)

	var errResp apperr.ErrorResponse
	s.Equal(http.StatusBadRequest, s.doRequest(http.MethodPost, "/api/user/customizations", token, customizations.CreateParams{
		OriginalExerciseID:    legCurl.String(),
		ReplacementExerciseID: "00000000-0000-0000-0000-000000000001",
	}, &errResp))
	s.Equal(apperr.CodeValidation, errResp.Code)

	otherToken := s.signup(4).Token
	customizationPath := "/api/user/customizations/" + createResp.Customization.ID.String()
	s.Equal(http.StatusNotFound, s.doRequest(http.MethodDelete, customizationPath, otherToken, nil, nil))
	s.Equal(http.StatusOK, s.doRequest(http.MethodDelete, customizationPath, token, nil, nil))
	s.Equal(http.StatusNotFound, s.doRequest(http.MethodDelete, customizationPath, token, nil, nil))
}
