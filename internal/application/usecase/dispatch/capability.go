package dispatch

import (
	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
)

// garageMayManage decides who may drive a claimed request's lifecycle:
// admins always, a garage only while the request is unclaimed or claimed by
// that garage. Unclaimed requests fall through to the state machine, which
// refuses lifecycle events that need a claim first.
func garageMayManage(caller outbound.Caller, request *entity.ServiceRequest) bool {
	if caller.IsAdmin() {
		return true
	}
	if caller.Role != outbound.RoleGarage {
		return false
	}
	return request.AssignedGarage() == "" || request.AssignedGarage() == caller.Subject
}

// mayReject widens garageMayManage with the requester-cancel path: the user
// who submitted the request may withdraw it.
func mayReject(caller outbound.Caller, request *entity.ServiceRequest) bool {
	if garageMayManage(caller, request) {
		return true
	}
	return caller.Role == outbound.RoleUser && caller.Subject != "" && caller.Subject == request.Requester()
}
