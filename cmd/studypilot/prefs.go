package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"studypilot/internal/domain/models"
	"studypilot/internal/presentation"
)

const (
	domainAccessibility = "accessibility"
	domainNotifications = "notifications"
	domainStudyPlan     = "study-plan"
)

var domainNames = []string{domainAccessibility, domainNotifications, domainStudyPlan}

// settingKey maps a CLI key onto a JSON patch field
type settingKey struct {
	field   string
	boolean bool
}

var settingKeys = map[string]map[string]settingKey{
	domainAccessibility: {
		"font-size":      {field: "fontSize"},
		"reduced-motion": {field: "reducedMotion", boolean: true},
		"high-contrast":  {field: "highContrast", boolean: true},
	},
	domainNotifications: {
		"push":         {field: "push", boolean: true},
		"email-digest": {field: "emailDigest", boolean: true},
	},
	domainStudyPlan: {
		"course-name":  {field: "courseName"},
		"exam-date":    {field: "examDate"},
		"weekly-hours": {field: "weeklyHours"},
		"study-style":  {field: "studyStyle"},
		"topics":       {field: "topics"},
		"remember":     {field: "rememberSettings", boolean: true},
	},
}

func newPrefsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change preferences",
		Long: `Show and change preferences.

Domains: accessibility, notifications, study-plan

Keys:
  accessibility  font-size=small|medium|large|extra-large reduced-motion=bool high-contrast=bool
  notifications  push=bool email-digest=bool
  study-plan     course-name=text exam-date=YYYY-MM-DD weekly-hours=1-80
                 study-style=balanced|intensive|relaxed topics=text remember=bool

Study-plan course name, exam date and topics are never stored.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "show <domain>",
			Short:     "Print a preference record",
			Args:      cobra.ExactArgs(1),
			ValidArgs: domainNames,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.showPrefs(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "set <domain> key=value...",
			Short: "Change one or more preference fields",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.setPrefs(cmd.Context(), args[0], args[1:])
			},
		},
		&cobra.Command{
			Use:   "reset study-plan",
			Short: "Reset the study-plan form, keeping hours, style and the remember flag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if args[0] != domainStudyPlan {
					return fmt.Errorf("%s cannot be reset", args[0])
				}
				plan, err := a.provider.StudyPlan(a.slots).Reset(cmd.Context())
				if err != nil {
					return err
				}
				return a.printYAML(plan)
			},
		},
	)
	return cmd
}

func (a *app) showPrefs(ctx context.Context, domain string) error {
	switch domain {
	case domainAccessibility:
		return a.printYAML(a.provider.Accessibility(a.slots, presentation.NewMarkerSet()).Load(ctx))
	case domainNotifications:
		return a.printYAML(a.provider.Notifications(a.slots).Load(ctx))
	case domainStudyPlan:
		return a.printYAML(a.provider.StudyPlan(a.slots).Load(ctx))
	default:
		return unknownDomain(domain)
	}
}

func (a *app) setPrefs(ctx context.Context, domain string, pairs []string) error {
	raw, err := buildPatch(domain, pairs)
	if err != nil {
		return err
	}

	switch domain {
	case domainAccessibility:
		var patch models.AccessibilityPatch
		if err := decodePatch(raw, &patch); err != nil {
			return err
		}
		markers := presentation.NewMarkerSet()
		settings, err := a.provider.Accessibility(a.slots, markers).Update(ctx, patch)
		if err != nil {
			return err
		}
		return a.printYAML(models.AccessibilityView{Settings: settings, Markers: markers.List()})

	case domainNotifications:
		var patch models.NotificationPatch
		if err := decodePatch(raw, &patch); err != nil {
			return err
		}
		settings, err := a.provider.Notifications(a.slots).Update(ctx, patch)
		if err != nil {
			return err
		}
		a.notifier.Notify(ctx, models.SuccessNotice("Notification settings saved", ""))
		return a.printYAML(settings)

	case domainStudyPlan:
		var patch models.PlanPatch
		if err := decodePatch(raw, &patch); err != nil {
			return err
		}
		plan, err := a.provider.StudyPlan(a.slots).Update(ctx, patch)
		if err != nil {
			return err
		}
		return a.printYAML(plan)
	}
	return unknownDomain(domain)
}

// buildPatch turns key=value pairs into a JSON patch object
func buildPatch(domain string, pairs []string) ([]byte, error) {
	keys, ok := settingKeys[domain]
	if !ok {
		return nil, unknownDomain(domain)
	}

	patch := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		k, v, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		key, ok := keys[strings.ToLower(strings.TrimSpace(k))]
		if !ok {
			return nil, fmt.Errorf("unknown %s key %q", domain, k)
		}
		if !key.boolean {
			patch[key.field] = v
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false", k)
		}
		patch[key.field] = b
	}
	return json.Marshal(patch)
}

func decodePatch(raw []byte, dest interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

func unknownDomain(domain string) error {
	return fmt.Errorf("unknown domain %q (want one of %s)", domain, strings.Join(domainNames, ", "))
}

func (a *app) printYAML(v interface{}) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newMarkersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "markers",
		Short: "List the presentation markers the accessibility settings produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			markers := presentation.NewMarkerSet()
			a.provider.Accessibility(a.slots, markers).Load(cmd.Context())
			for _, m := range markers.List() {
				fmt.Fprintln(a.out, m)
			}
			return nil
		},
	}
}
