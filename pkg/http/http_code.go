// Copyright 2025 Staffly Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

var (
	Failed                        = failed(500, "Request failed")
	RequestParameterParsingFailed = failed(5001, "Request parameter parsing failed")

	// Unauthorized 401
	Unauthorized         = failed(4401, "Unauthorized")
	AuthenticationFailed = failed(4402, "Authentication failed")
	InvalidToken         = failed(4405, "Invalid token")
	TokenBeEmpty         = failed(4406, "Token cannot be empty")
	TokenExpired         = failed(4407, "Token is expired")

	// BadRequest 400
	BadRequest = failed(4000, "Bad request")
	NotFound   = failed(4004, "Not found")

	// Forbidden 403
	Forbidden        = failed(4030, "Forbidden")
	PermissionDenied = failed(4031, "Permission denied")

	InternalError = failed(5000, "Internal error, please contact the administrator")

	UserNotExist                  = failed(4041, "User does not exist")
	UserAlreadyExist              = failed(4042, "User already exists")
	UserIncorrectPassword         = failed(4043, "User incorrect password")
	UsernameArePasswordIsRequired = failed(4045, "Username and password are required")

	UnsupportedProviders          = failed(4501, "Unsupported provider")
	InvalidStatusParameter        = failed(4502, "Invalid status parameter")
	TokenExchangeFailed           = failed(4503, "Token exchange failed")
	FailedToObtainUserInformation = failed(4504, "Failed to obtain user information")

	MenuNotExist          = failed(4061, "Menu item does not exist")
	MenuParentNotExist    = failed(4062, "Parent menu item does not exist")
	MenuParentCycle       = failed(4063, "Parent assignment would create a cycle")
	RoleNotExist          = failed(4071, "Role does not exist")
	AlreadyClockedIn      = failed(4081, "Already clocked in today")
	NotClockedIn          = failed(4082, "Not clocked in yet")
	BreakAlreadyOpen      = failed(4083, "A break is already in progress")
	NoOpenBreak           = failed(4084, "No break in progress")
	LeaveInvalidDateRange = failed(4091, "Invalid leave date range")
	LeaveNotReviewable    = failed(4092, "Leave request is not pending")
)

var (
	Success = success(200, "Request Success")
)

// failed 构造函数
func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

// success 构造函数
func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
