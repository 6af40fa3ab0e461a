package handlers

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Message string `json:"message"`
}

type RejectionResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	WriteJSON(w, &Response{Message: msg}, status)
}

func WriteJSON(w http.ResponseWriter, v interface{}, status int) {
	body, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	WriteJSON(w, &ErrorsResponse{Errors: errors}, status)
}

func mergeErrors(errs ...*CustomError) []*CustomError {
	result := make([]*CustomError, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			result = append(result, e)
		}
	}

	return result
}
