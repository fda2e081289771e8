package githubapi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/dnscache"
	"go.uber.org/zap"
)

const (
	publicHostConstant              = "github.com"
	apiHostReplacementConstant      = "api.github.com/repos"
	trailingSlashConstant           = "/"
	branchesPathConstant            = "/branches"
	releasesPathConstant            = "/releases"
	tagsPathConstant                = "/tags"
	manifestContentsPathConstant    = "/contents/go.mod"
	refQueryParameterConstant       = "ref"
	pageQueryParameterConstant      = "page"
	perPageQueryParameterConstant   = "per_page"
	acceptHeaderNameConstant        = "Accept"
	acceptHeaderValueConstant       = "application/vnd.github+json"
	userAgentHeaderNameConstant     = "User-Agent"
	userAgentHeaderValueConstant    = "version-table"
	authorizationHeaderNameConstant = "Authorization"
	authorizationTemplateConstant   = "Bearer %s"
	base64EncodingMarkerConstant    = "base64"
	firstPageNumberConstant         = 1
	defaultBranchPageSizeConstant   = 100
	defaultRequestTimeoutConstant   = 30 * time.Second
	dnsRefreshIntervalConstant      = 5 * time.Minute
	dialTimeoutConstant             = 30 * time.Second
	keepAliveIntervalConstant       = 30 * time.Second
	repositoryURLRequiredMessage    = "repository URL must be provided"
	requestIssuedMessageConstant    = "issuing GitHub API request"
	requestURLFieldNameConstant     = "url"
	requestErrorTemplateConstant    = "GET %s: %w"
	statusErrorTemplateConstant     = "GET %s returned status %d"
	decodeErrorTemplateConstant     = "GET %s: decoding response: %w"
	base64DecodeErrorTemplate       = "decoding base64 content for ref %s: %w"
)

// ErrRepositoryURLRequired indicates the client was configured without a repository URL.
var ErrRepositoryURLRequired = errors.New(repositoryURLRequiredMessage)

// Branch identifies one repository branch from the list endpoint.
type Branch struct {
	Name string `json:"name"`
}

// Release identifies one published release from the list endpoint.
type Release struct {
	TagName string `json:"tag_name"`
}

// Tag identifies one repository tag from the list endpoint.
type Tag struct {
	Name string `json:"name"`
}

type fileContentEnvelope struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// ClientConfiguration adjusts transport and paging behavior.
type ClientConfiguration struct {
	RepositoryURL      string
	APIBaseURL         string
	BranchPageSize     int
	RequestTimeout     time.Duration
	AuthorizationToken string
}

// Client issues REST calls against a single repository's API endpoints.
type Client struct {
	httpClient         *http.Client
	logger             *zap.Logger
	apiBaseURL         string
	branchPageSize     int
	authorizationToken string
}

// NewClient validates the configuration and assembles a ready-to-use client.
func NewClient(logger *zap.Logger, configuration ClientConfiguration) (*Client, error) {
	resolvedBaseURL := strings.TrimSpace(configuration.APIBaseURL)
	if len(resolvedBaseURL) == 0 {
		repositoryURL := strings.TrimSpace(configuration.RepositoryURL)
		if len(repositoryURL) == 0 {
			return nil, ErrRepositoryURLRequired
		}
		resolvedBaseURL = APIBaseURL(repositoryURL)
	}
	resolvedBaseURL = strings.TrimRight(resolvedBaseURL, trailingSlashConstant)

	resolvedLogger := logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	resolvedPageSize := configuration.BranchPageSize
	if resolvedPageSize <= 0 {
		resolvedPageSize = defaultBranchPageSizeConstant
	}

	resolvedTimeout := configuration.RequestTimeout
	if resolvedTimeout <= 0 {
		resolvedTimeout = defaultRequestTimeoutConstant
	}

	return &Client{
		httpClient:         newHTTPClient(resolvedTimeout),
		logger:             resolvedLogger,
		apiBaseURL:         resolvedBaseURL,
		branchPageSize:     resolvedPageSize,
		authorizationToken: strings.TrimSpace(configuration.AuthorizationToken),
	}, nil
}

// APIBaseURL converts a public repository URL into its REST API form.
func APIBaseURL(repositoryURL string) string {
	apiURL := strings.Replace(repositoryURL, publicHostConstant, apiHostReplacementConstant, 1)
	return strings.TrimRight(apiURL, trailingSlashConstant)
}

// newHTTPClient builds the transport with a cached DNS resolver so repeated
// per-ref lookups do not re-resolve the API host.
func newHTTPClient(requestTimeout time.Duration) *http.Client {
	resolver := &dnscache.Resolver{}
	go func() {
		refreshTicker := time.NewTicker(dnsRefreshIntervalConstant)
		defer refreshTicker.Stop()
		for range refreshTicker.C {
			resolver.Refresh(true)
		}
	}()

	dialer := &net.Dialer{
		Timeout:   dialTimeoutConstant,
		KeepAlive: keepAliveIntervalConstant,
	}

	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: func(dialContext context.Context, network string, address string) (net.Conn, error) {
				host, port, splitError := net.SplitHostPort(address)
				if splitError != nil {
					return nil, splitError
				}
				resolvedAddresses, lookupError := resolver.LookupHost(dialContext, host)
				if lookupError != nil {
					return nil, lookupError
				}
				var dialError error
				for _, resolvedAddress := range resolvedAddresses {
					var connection net.Conn
					connection, dialError = dialer.DialContext(dialContext, network, net.JoinHostPort(resolvedAddress, port))
					if dialError == nil {
						return connection, nil
					}
				}
				if dialError == nil {
					dialError = fmt.Errorf("no addresses resolved for %s", host)
				}
				return nil, dialError
			},
		},
	}
}

// ListBranches pages through the branch listing until an empty page returns.
func (client *Client) ListBranches(executionContext context.Context) ([]Branch, error) {
	var allBranches []Branch

	for pageNumber := firstPageNumberConstant; ; pageNumber++ {
		pageQuery := url.Values{}
		pageQuery.Set(pageQueryParameterConstant, strconv.Itoa(pageNumber))
		pageQuery.Set(perPageQueryParameterConstant, strconv.Itoa(client.branchPageSize))

		var pageBranches []Branch
		if requestError := client.getJSON(executionContext, branchesPathConstant, pageQuery, &pageBranches); requestError != nil {
			return nil, requestError
		}
		if len(pageBranches) == 0 {
			break
		}
		allBranches = append(allBranches, pageBranches...)
	}

	return allBranches, nil
}

// ListReleases fetches the release listing in a single request.
func (client *Client) ListReleases(executionContext context.Context) ([]Release, error) {
	var releases []Release
	if requestError := client.getJSON(executionContext, releasesPathConstant, nil, &releases); requestError != nil {
		return nil, requestError
	}
	return releases, nil
}

// ListTags fetches the tag listing in a single request.
func (client *Client) ListTags(executionContext context.Context) ([]Tag, error) {
	var tags []Tag
	if requestError := client.getJSON(executionContext, tagsPathConstant, nil, &tags); requestError != nil {
		return nil, requestError
	}
	return tags, nil
}

// FetchFileContent retrieves the manifest text at the provided ref, decoding
// the payload when the response marks it as base64.
func (client *Client) FetchFileContent(executionContext context.Context, refName string) (string, error) {
	refQuery := url.Values{}
	refQuery.Set(refQueryParameterConstant, refName)

	var envelope fileContentEnvelope
	if requestError := client.getJSON(executionContext, manifestContentsPathConstant, refQuery, &envelope); requestError != nil {
		return "", requestError
	}

	if envelope.Encoding != base64EncodingMarkerConstant {
		return envelope.Content, nil
	}

	compactContent := strings.ReplaceAll(envelope.Content, "\n", "")
	decodedBytes, decodeError := base64.StdEncoding.DecodeString(compactContent)
	if decodeError != nil {
		return "", fmt.Errorf(base64DecodeErrorTemplate, refName, decodeError)
	}
	return string(decodedBytes), nil
}

func (client *Client) getJSON(executionContext context.Context, resourcePath string, queryValues url.Values, target any) error {
	requestURL := client.apiBaseURL + resourcePath
	if len(queryValues) > 0 {
		requestURL = requestURL + "?" + queryValues.Encode()
	}

	client.logger.Debug(requestIssuedMessageConstant, zap.String(requestURLFieldNameConstant, requestURL))

	request, requestBuildError := http.NewRequestWithContext(executionContext, http.MethodGet, requestURL, nil)
	if requestBuildError != nil {
		return fmt.Errorf(requestErrorTemplateConstant, requestURL, requestBuildError)
	}

	request.Header.Set(acceptHeaderNameConstant, acceptHeaderValueConstant)
	request.Header.Set(userAgentHeaderNameConstant, userAgentHeaderValueConstant)
	if len(client.authorizationToken) > 0 {
		request.Header.Set(authorizationHeaderNameConstant, fmt.Sprintf(authorizationTemplateConstant, client.authorizationToken))
	}

	response, requestError := client.httpClient.Do(request)
	if requestError != nil {
		return fmt.Errorf(requestErrorTemplateConstant, requestURL, requestError)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf(statusErrorTemplateConstant, requestURL, response.StatusCode)
	}

	if decodeError := json.NewDecoder(response.Body).Decode(target); decodeError != nil {
		return fmt.Errorf(decodeErrorTemplateConstant, requestURL, decodeError)
	}

	return nil
}
