package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/infrastructure/i18n"
)

// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// AuthMiddleware valida bearer tokens e aplica as regras de papel por rota
type AuthMiddleware struct {
	tokens ports.TokenManager
	users  repositories.UserRepository
	logger ports.Logger
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens ports.TokenManager, users repositories.UserRepository, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// RequireAuth exige um bearer token válido e carrega o usuário no contexto.
// Token ausente, malformado ou expirado produz sempre o mesmo 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			m.abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Error("failed to load authenticated user", "user_id", claims.UserID, "error", err)
			m.abortProblem(c, http.StatusInternalServerError, errors.ProblemTypeInternal, "error.internal.title", "error.internal.detail")
			return
		}
		if user == nil {
			// O token sobreviveu ao usuário. Trata como não autenticado.
			m.abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequireRole exige que o usuário autenticado tenha um dos papéis dados.
// Deve vir depois de RequireAuth na cadeia.
func (m *AuthMiddleware) RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			m.abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		m.abortProblem(c, http.StatusForbidden, errors.ProblemTypeForbidden, "error.forbidden.title", "error.forbidden.detail")
	}
}

// CurrentUser retorna o usuário autenticado carregado por RequireAuth
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// abortProblem escreve um problema RFC 7807 traduzido e aborta a cadeia.
// Montado aqui para não importar o pacote dto (que importa este).
func (m *AuthMiddleware) abortProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title := titleKey
	detail := detailKey
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang := c.GetString(LanguageContextKey)
			if lang == "" {
				lang = service.GetDefaultLanguage()
			}
			title = service.T(lang, titleKey)
			detail = service.T(lang, detailKey)
		}
	}

	c.AbortWithStatusJSON(status, gin.H{
		"type":     baseURL + problemType,
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.Request.URL.Path,
	})
}
