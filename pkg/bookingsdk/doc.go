/*
Package bookingsdk is a Go client for the medbook appointment booking API.

# SDKClient vs Session

Public endpoints hang off SDKClient; anything that needs a bearer token
hangs off a Session, which Login returns:

	client := bookingsdk.NewSDKClient("http://localhost:8080")

	doctors, err := client.ListDoctors(ctx)

	session, err := client.Login(ctx, "pat@example.com", "secret")
	id, err := session.CreateAppointment(ctx, bookingsdk.CreateAppointmentRequest{
		DoctorID:        doctors[0].ID,
		AppointmentTime: "2025-03-01T10:00:00Z",
	})

Sessions do not refresh. When the access token expires every call fails
with an *APIError whose StatusCode is 401, and the caller logs in again.

# Errors

Non-2xx responses are returned as *APIError carrying the status code and
the server's {"error","message"} body. Helpers such as IsNotFound and
IsForbidden cover the common checks.

# Wire types

The request and response structs in this package are the same ones the
server decodes and encodes, so they double as the API documentation.
*/
package bookingsdk
