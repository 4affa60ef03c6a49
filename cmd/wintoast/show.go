package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wintoast"
	"github.com/llehouerou/wintoast/internal/config"
)

var sounds = map[string]wintoast.Sound{
	"none":            wintoast.SoundNone,
	"default":         wintoast.SoundDefault,
	"im":              wintoast.SoundIM,
	"mail":            wintoast.SoundMail,
	"reminder":        wintoast.SoundReminder,
	"sms":             wintoast.SoundSMS,
	"looping.alarm":   wintoast.SoundLoopingAlarm,
	"looping.alarm2":  wintoast.SoundLoopingAlarm2,
	"looping.alarm3":  wintoast.SoundLoopingAlarm3,
	"looping.alarm4":  wintoast.SoundLoopingAlarm4,
	"looping.alarm5":  wintoast.SoundLoopingAlarm5,
	"looping.alarm6":  wintoast.SoundLoopingAlarm6,
	"looping.alarm7":  wintoast.SoundLoopingAlarm7,
	"looping.alarm8":  wintoast.SoundLoopingAlarm8,
	"looping.alarm9":  wintoast.SoundLoopingAlarm9,
	"looping.alarm10": wintoast.SoundLoopingAlarm10,
	"looping.call":    wintoast.SoundLoopingCall,
	"looping.call2":   wintoast.SoundLoopingCall2,
	"looping.call3":   wintoast.SoundLoopingCall3,
	"looping.call4":   wintoast.SoundLoopingCall4,
	"looping.call5":   wintoast.SoundLoopingCall5,
	"looping.call6":   wintoast.SoundLoopingCall6,
	"looping.call7":   wintoast.SoundLoopingCall7,
	"looping.call8":   wintoast.SoundLoopingCall8,
	"looping.call9":   wintoast.SoundLoopingCall9,
	"looping.call10":  wintoast.SoundLoopingCall10,
}

func showCmd() *cobra.Command {
	var (
		title       string
		body        string
		attribution string
		tag         string
		group       string
		long        bool
		sound       string
		loop        bool
		hero        string
		icon        string
		actions     []string
		inputID     string
		placeholder string
		wait        bool
		dumpXML     bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a toast notification",
		Long: `Show a toast notification.

Actions are given as label=argument pairs and reported back when
--wait is set, e.g.:

  wintoast show --title "Build done" --action ok=open --action no=skip --wait`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			aumID := cfg.AumID
			if aumID == "" {
				aumID = wintoast.PowerShellAumID
			}

			toast := wintoast.NewToast().Text1(wintoast.NewText(title))
			if body != "" {
				toast.Text2(wintoast.NewText(body))
			}
			if attribution != "" {
				toast.Text3(wintoast.NewText(attribution).
					WithPlacement(wintoast.TextPlacementAttribution))
			}
			if tag != "" {
				toast.Tag(tag)
			}
			if group != "" {
				toast.Group(group)
			}
			if long {
				toast.Duration(wintoast.DurationLong)
			}
			if sound != "" {
				s, ok := sounds[strings.ToLower(sound)]
				if !ok {
					return fmt.Errorf("unknown sound %q", sound)
				}
				audio := wintoast.NewAudio(s)
				if loop {
					audio.WithLooping()
				}
				toast.Audio(audio)
			}
			if hero != "" {
				img, err := wintoast.NewImageFromPath(hero)
				if err != nil {
					return fmt.Errorf("hero image: %w", err)
				}
				toast.Image(1, img.WithPlacement(wintoast.ImagePlacementHero))
			}
			if icon != "" {
				img, err := wintoast.NewImageFromPath(icon)
				if err != nil {
					return fmt.Errorf("icon image: %w", err)
				}
				toast.Image(2, img.
					WithPlacement(wintoast.ImagePlacementAppLogoOverride).
					WithHintCrop(wintoast.ImageHintCropCircle))
			}
			if inputID != "" {
				input := wintoast.NewInput(inputID, wintoast.InputTypeText)
				if placeholder != "" {
					input.WithPlaceholder(placeholder)
				}
				toast.Input(input)
			}
			for _, pair := range actions {
				label, arg, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid action %q, want label=argument", pair)
				}
				action := wintoast.NewAction(label, arg, "")
				if inputID != "" {
					action.WithInputID(inputID)
				}
				toast.Action(action)
			}

			if dumpXML {
				fmt.Println(toast.XML())
				return nil
			}

			manager := wintoast.NewToastManager(aumID)
			done := make(chan struct{}, 1)
			if wait {
				manager.
					OnActivated(inputID, func(action *wintoast.ActivatedAction) {
						if action == nil {
							log.Println("toast clicked")
						} else {
							log.Printf("action %q activated", action.Arg)
							for id, value := range action.Values {
								log.Printf("input %s = %q", id, value)
							}
						}
						done <- struct{}{}
					}).
					OnDismissed(func(d wintoast.ToastDismissed, err error) {
						if err != nil {
							log.Printf("dismissal error: %v", err)
						} else {
							log.Printf("dismissed: %s", d.Reason)
						}
						done <- struct{}{}
					}).
					OnFailed(func(f wintoast.ToastFailed) {
						log.Printf("failed: %v", f.Err)
						done <- struct{}{}
					})
			}

			if err := manager.Show(toast); err != nil {
				return err
			}

			if wait {
				// The toast fades out after ~7s, or ~25s with --long;
				// leave some slack beyond the window the bridge keeps
				// listening so the CLI never gives up first.
				timeout := 20 * time.Second
				if long {
					timeout = 40 * time.Second
				}
				select {
				case <-done:
				case <-time.After(timeout):
					log.Println("no event received within timeout")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Wintoast", "First text line")
	cmd.Flags().StringVar(&body, "body", "", "Second text line")
	cmd.Flags().StringVar(&attribution, "attribution", "", "Attribution text line")
	cmd.Flags().StringVar(&tag, "tag", "", "Correlation tag")
	cmd.Flags().StringVar(&group, "group", "", "Correlation group")
	cmd.Flags().BoolVar(&long, "long", false, "Keep the toast on screen for ~25s instead of ~7s")
	cmd.Flags().StringVar(&sound, "sound", "", "Notification sound (default, im, mail, reminder, sms, looping.alarm..looping.call10, none)")
	cmd.Flags().BoolVar(&loop, "loop", false, "Loop the sound until dismissed")
	cmd.Flags().StringVar(&hero, "hero", "", "Absolute path to a hero image")
	cmd.Flags().StringVar(&icon, "icon", "", "Absolute path to an app logo override image")
	cmd.Flags().StringArrayVar(&actions, "action", nil, "Action button as label=argument (repeatable)")
	cmd.Flags().StringVar(&inputID, "input", "", "Add a text input field with this id")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "Placeholder for the input field")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for activation/dismissal and report it")
	cmd.Flags().BoolVar(&dumpXML, "xml", false, "Print the notification document instead of showing it")

	return cmd
}
