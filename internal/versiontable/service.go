package versiontable

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/redhat-cne/version-table/internal/githubapi"
	"github.com/redhat-cne/version-table/internal/manifest"
)

const (
	mainBranchNameConstant              = "main"
	noVersionDataSentinelConstant       = "No version data found."
	tagAllowPatternConstant             = `^(v?[\d.]+|release-[\d.]+|4\.\d+)$`
	refListerMissingMessageConstant     = "ref lister not configured"
	manifestFetcherMissingMessage       = "manifest fetcher not configured"
	listingStartedMessageConstant       = "fetching branches, releases and tags"
	branchListingFailedMessageConstant  = "branch listing failed"
	releaseListingFailedMessageConst    = "release listing failed"
	tagListingFailedMessageConstant     = "tag listing failed"
	processingMainMessageConstant       = "processing main branch"
	processingBranchesMessageConstant   = "processing branches"
	processingReleasesMessageConstant   = "processing releases"
	processingTagsMessageConstant       = "processing tags"
	processingRefMessageConstant        = "processing ref"
	manifestFetchFailedMessageConstant  = "manifest fetch failed"
	refNameLogFieldConstant             = "ref"
	branchCountLogFieldConstant         = "branch_count"
	releaseCountLogFieldConstant        = "release_count"
	tagCountLogFieldConstant            = "tag_count"
)

var tagAllowPattern = regexp.MustCompile(tagAllowPatternConstant)

// IsAllowedTagName reports whether a raw tag name looks like a version the
// table tracks: dotted numerics with an optional "v" prefix, "release-" plus
// dotted numerics, or a bare "4.<minor>" stream name.
func IsAllowedTagName(tagName string) bool {
	return tagAllowPattern.MatchString(tagName)
}

// ErrRefListerNotConfigured indicates the ref lister dependency was missing.
var ErrRefListerNotConfigured = errors.New(refListerMissingMessageConstant)

// ErrManifestFetcherNotConfigured indicates the manifest fetcher dependency was missing.
var ErrManifestFetcherNotConfigured = errors.New(manifestFetcherMissingMessage)

// RefLister enumerates a repository's branches, releases, and tags.
type RefLister interface {
	ListBranches(executionContext context.Context) ([]githubapi.Branch, error)
	ListReleases(executionContext context.Context) ([]githubapi.Release, error)
	ListTags(executionContext context.Context) ([]githubapi.Tag, error)
}

// ManifestFetcher retrieves the dependency manifest text for a single ref.
type ManifestFetcher interface {
	FetchFileContent(executionContext context.Context, refName string) (string, error)
}

// Dependencies enumerates the collaborators required by the Service.
type Dependencies struct {
	Logger          *zap.Logger
	RefLister       RefLister
	ManifestFetcher ManifestFetcher
	Annotations     map[string]string
}

// Options bounds the release and tag phases of a generation run.
type Options struct {
	ReleaseLimit int
	TagLimit     int
}

// Service sequences ref processing and owns the accumulated records.
type Service struct {
	logger          *zap.Logger
	refLister       RefLister
	manifestFetcher ManifestFetcher
	annotations     map[string]string
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RefLister == nil {
		return nil, ErrRefListerNotConfigured
	}
	if dependencies.ManifestFetcher == nil {
		return nil, ErrManifestFetcherNotConfigured
	}

	resolvedLogger := dependencies.Logger
	if resolvedLogger == nil {
		resolvedLogger = zap.NewNop()
	}

	resolvedAnnotations := dependencies.Annotations
	if resolvedAnnotations == nil {
		resolvedAnnotations = map[string]string{}
	}

	return &Service{
		logger:          resolvedLogger,
		refLister:       dependencies.RefLister,
		manifestFetcher: dependencies.ManifestFetcher,
		annotations:     resolvedAnnotations,
	}, nil
}

// Generate runs every phase and renders the markdown table, or the no-data
// sentinel when no ref produced a version field. Listing and fetch failures
// degrade to absent data and never abort the run.
func (service *Service) Generate(executionContext context.Context, options Options) (string, error) {
	resolvedOptions := options
	if resolvedOptions.ReleaseLimit <= 0 {
		resolvedOptions.ReleaseLimit = defaultReleaseLimitConstant
	}
	if resolvedOptions.TagLimit <= 0 {
		resolvedOptions.TagLimit = defaultTagLimitConstant
	}

	service.logger.Info(listingStartedMessageConstant)
	branches := service.listBranches(executionContext)
	releases := service.listReleases(executionContext)
	tags := service.listTags(executionContext)

	processedRefs := map[string]struct{}{}
	var records []Record

	service.logger.Info(processingMainMessageConstant)
	mainVersions := service.refVersions(executionContext, mainBranchNameConstant)
	if mainVersions.HasAny() {
		records = append(records, newRecord(mainBranchNameConstant, mainVersions, ""))
	}
	processedRefs[mainBranchNameConstant] = struct{}{}

	service.logger.Info(processingBranchesMessageConstant, zap.Int(branchCountLogFieldConstant, len(branches)))
	for _, branch := range branches {
		if _, alreadyProcessed := processedRefs[branch.Name]; alreadyProcessed {
			continue
		}

		service.logger.Info(processingRefMessageConstant, zap.String(refNameLogFieldConstant, branch.Name))
		branchVersions := service.refVersions(executionContext, branch.Name)
		if branchVersions.HasAny() {
			records = append(records, newRecord(branch.Name, branchVersions, service.annotations[branch.Name]))
		}
		processedRefs[branch.Name] = struct{}{}
	}

	service.logger.Info(processingReleasesMessageConstant, zap.Int(releaseCountLogFieldConstant, len(releases)))
	for _, release := range boundedReleases(releases, resolvedOptions.ReleaseLimit) {
		if _, alreadyProcessed := processedRefs[release.TagName]; alreadyProcessed {
			continue
		}

		service.logger.Info(processingRefMessageConstant, zap.String(refNameLogFieldConstant, release.TagName))
		releaseVersions := service.refVersions(executionContext, release.TagName)
		if releaseVersions.HasAny() {
			records = append(records, newRecord(NormalizeRefName(release.TagName), releaseVersions, service.annotations[release.TagName]))
		}
		processedRefs[release.TagName] = struct{}{}
	}

	service.logger.Info(processingTagsMessageConstant, zap.Int(tagCountLogFieldConstant, len(tags)))
	for _, tag := range boundedTags(tags, resolvedOptions.TagLimit) {
		if _, alreadyProcessed := processedRefs[tag.Name]; alreadyProcessed {
			continue
		}
		if !IsAllowedTagName(tag.Name) {
			continue
		}

		service.logger.Info(processingRefMessageConstant, zap.String(refNameLogFieldConstant, tag.Name))
		tagVersions := service.refVersions(executionContext, tag.Name)
		if tagVersions.HasAny() {
			records = append(records, newRecord(NormalizeRefName(tag.Name), tagVersions, service.annotations[tag.Name]))
		}
		processedRefs[tag.Name] = struct{}{}
	}

	if len(records) == 0 {
		return noVersionDataSentinelConstant, nil
	}
	return renderTable(records), nil
}

func (service *Service) listBranches(executionContext context.Context) []githubapi.Branch {
	branches, listError := service.refLister.ListBranches(executionContext)
	if listError != nil {
		service.logger.Error(branchListingFailedMessageConstant, zap.Error(listError))
		return nil
	}
	return branches
}

func (service *Service) listReleases(executionContext context.Context) []githubapi.Release {
	releases, listError := service.refLister.ListReleases(executionContext)
	if listError != nil {
		service.logger.Error(releaseListingFailedMessageConst, zap.Error(listError))
		return nil
	}
	return releases
}

func (service *Service) listTags(executionContext context.Context) []githubapi.Tag {
	tags, listError := service.refLister.ListTags(executionContext)
	if listError != nil {
		service.logger.Error(tagListingFailedMessageConstant, zap.Error(listError))
		return nil
	}
	return tags
}

// refVersions fetches and parses one ref's manifest, degrading to zero values
// when the fetch fails.
func (service *Service) refVersions(executionContext context.Context, refName string) manifest.Versions {
	manifestText, fetchError := service.manifestFetcher.FetchFileContent(executionContext, refName)
	if fetchError != nil {
		service.logger.Error(manifestFetchFailedMessageConstant, zap.String(refNameLogFieldConstant, refName), zap.Error(fetchError))
		return manifest.Versions{}
	}
	return manifest.Parse(manifestText)
}

func newRecord(displayName string, versions manifest.Versions, annotation string) Record {
	return Record{
		RefName: displayName,
		Golang:  versions.Golang,
		RestAPI: versions.RestAPI,
		SDKGo:   versions.SDKGo,
		Note:    annotation,
	}
}

func boundedReleases(releases []githubapi.Release, limit int) []githubapi.Release {
	if len(releases) > limit {
		return releases[:limit]
	}
	return releases
}

func boundedTags(tags []githubapi.Tag, limit int) []githubapi.Tag {
	if len(tags) > limit {
		return tags[:limit]
	}
	return tags
}
