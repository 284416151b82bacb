// Package account confirms that GitHub usernames belong to real accounts.
//
// The remote call sits behind the one-method Lookup interface. GitHubClient
// is the production implementation (GET /users/{username} on the REST API,
// optional bearer token); tests and alternative transports can supply any
// Lookup, including a plain function through LookupFunc.
//
// Checker maps a lookup outcome to a validation result:
//
//   - not found                  -> "user not found, verify the username"
//   - other non-success status   -> "error checking user, status=<code>"
//   - transport failure          -> "error checking user: <message>"
//   - type not User/Organization -> "not a valid account"
//
// UsernameValidator runs the format rules from the validator package first
// and only performs the lookup when they pass:
//
//	client, err := account.NewGitHubClientFromEnv()
//	if err != nil {
//		return err
//	}
//	v := account.NewUsernameValidator(client, account.WithLogger(log))
//
//	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
//	defer cancel()
//	if err := v.Validate(ctx, "octocat"); err != nil {
//		fmt.Println(validator.Reason(err))
//	}
//
// Results are never cached and failed lookups are not retried.
package account
