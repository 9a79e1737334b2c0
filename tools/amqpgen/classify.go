package main

// Role decides which helpers are generated for a method
type Role int

const (
	// RolePassthrough methods only get a record and a dispatch entry
	RolePassthrough Role = iota
	// RoleSyncCall methods are sent to the server and awaited
	RoleSyncCall
	// RoleAsyncSend methods are sent to the server without a reply
	RoleAsyncSend
	// RoleResponse methods answer a peer request
	RoleResponse
)

func (r Role) String() string {
	switch r {
	case RoleSyncCall:
		return "sync-call"
	case RoleAsyncSend:
		return "async-send"
	case RoleResponse:
		return "response"
	default:
		return "passthrough"
	}
}

// Classify derives a method's role from its chassis and response
// declarations alone
func Classify(c *Class, m *Method) Role {
	toServer := m.Chassis.Has(ChassisServer)
	switch {
	case toServer && m.Response() != "":
		return RoleSyncCall
	case toServer:
		return RoleAsyncSend
	case m.Chassis.Has(ChassisClient) || isResponseOf(c, m.Name):
		return RoleResponse
	default:
		return RolePassthrough
	}
}

// isResponseOf reports whether another method in c names method as a response
func isResponseOf(c *Class, method string) bool {
	for i := range c.Methods {
		if c.Methods[i].Name == method {
			continue
		}
		for _, r := range c.Methods[i].Responses {
			if r == method {
				return true
			}
		}
	}
	return false
}
