package handlers

import (
	"github.com/kassem10h/Gym-Poject/pkg/response"
)

// RespOK is a generic OK envelope for documentation purposes.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}
