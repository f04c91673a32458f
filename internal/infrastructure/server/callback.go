package server

import (
	"errors"
	"html/template"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// The token and origin are rendered in a JS context, so html/template quotes and escapes them.
var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>GitHub login</title></head>
<body>
<p id="status">Authenticating...</p>
<script>
(function () {
  var token = {{.Token}};
  if (window.opener) {
    window.opener.postMessage({type: "github-token", token: token}, {{.Origin}});
    setTimeout(function () { window.close(); }, 1000);
  } else {
    document.getElementById("status").textContent = "Login successful!";
  }
})();
</script>
</body>
</html>
`))

type callbackData struct {
	Token  string
	Origin string
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	token, err := s.deps.GitHubAuth.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeCallbackFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	data := callbackData{Token: token, Origin: s.deps.Settings.GitHub.OpenerOrigin}
	if renderErr := callbackPage.Execute(w, data); renderErr != nil {
		logger.Errorf("Failed to render callback page: %v", renderErr)
	}
}

func writeCallbackFailure(w http.ResponseWriter, err error) {
	var (
		validationErr *entities.ValidationError
		authErr       *entities.AuthError
	)

	message := err.Error()
	switch {
	case errors.As(err, &validationErr):
		message = validationErr.Reason
	case errors.As(err, &authErr):
		message = "Auth failed: " + authErr.Error()
	case errors.Is(err, entities.ErrNotConfigured):
		message = "GitHub OAuth is not configured on the server"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	status := statusFor(err)
	if authErr != nil {
		// an upstream rejection is still the caller's bad code
		status = http.StatusBadRequest
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
