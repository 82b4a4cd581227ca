/*
Package shepherdsdk provides a client SDK for the Shepherd church administration service.

# Overview

The package wraps the Shepherd REST API. Public endpoints are served by SDKClient and
everything that needs a signed-in user goes through a Session.

# SDKClient vs Session

  - SDKClient: health probes, the JWKS, bootstrap, signup and signin
  - Session: member records, events, attendance, discipleship and role administration

Create an SDKClient to reach the public endpoints and sign in:

	client := shepherdsdk.NewSDKClient("https://shepherd.example.com")

	// Probe the service
	health, err := client.Readyz(ctx)

	// Create the first Senior Pastor account (one-time setup)
	user, err := client.Bootstrap(ctx, token, shepherdsdk.BootstrapRequest{...})

	// Sign in and get a session
	session, err := client.Authenticate(ctx, email, password)

Sessions carry the access token on every request:

	me, err := session.Me(ctx)
	members, err := session.ListMembers(ctx, 1, 20)
	created, err := session.CreateEvent(ctx, shepherdsdk.EventRequest{...})

Sessions do not refresh tokens. When the token expires, sign in again. A token also
stops working once the user changes their password.

# Authorization

Access is decided by the roles assigned to the signed-in user. The server checks role
names, permissions, department access and the role hierarchy, where level 1 (Senior
Pastor) is the most senior. Denied calls fail with a 403 *APIError whose Description
names the missing capability.

# Check-in Codes

Event managers fetch a rotating six digit code with Session.CheckInCode and display it.
Members enter it through Session.SelfCheckIn. Codes rotate every minute and the previous
code is still accepted.

# Error Handling

Every non-2xx response is returned as an *APIError:

	_, err := session.GetMember(ctx, id)
	var apiErr *shepherdsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == shepherdsdk.ErrorCodeNotFound {
		// member does not exist
	}

Validation failures use ErrorCodeValidationFailed and list the offending JSON fields in
APIError.Fields. StatusCode extracts the HTTP status from any error returned by the SDK.

# Partial Updates

UpdateMember, UpdateEvent and UpdateRole send their patch argument as-is. Only the JSON
fields present in the patch are changed, so pass a map or a struct with omitempty tags:

	_, err := session.UpdateMember(ctx, id, map[string]any{"city": "Moab"})
*/
package shepherdsdk
