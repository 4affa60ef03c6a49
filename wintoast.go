// Package wintoast shows Windows toast notifications and reports the
// user's interaction with them.
//
// A toast is described with the content model (Text, Image, Audio,
// Action, Input, Selection, Header), serialized into the notification
// document the platform consumes, and shown through a ToastManager
// bound to an Application User Model ID:
//
//	manager := wintoast.NewToastManager(wintoast.PowerShellAumID)
//
//	toast := wintoast.NewToast().
//		Text1(wintoast.NewText("Title")).
//		Text2(wintoast.NewText("Body")).
//		Text3(wintoast.NewText("Via SMS").WithPlacement(wintoast.TextPlacementAttribution))
//
//	if err := manager.Show(toast); err != nil {
//		log.Fatal(err)
//	}
//
// Activation, dismissal and display failure arrive asynchronously
// through handlers registered before Show:
//
//	done := make(chan struct{})
//	manager.OnActivated("", func(action *wintoast.ActivatedAction) {
//		if action != nil {
//			log.Printf("clicked %s", action.Arg)
//		}
//		close(done)
//	})
//
// Handlers run on a platform-owned goroutine; bridging a result back
// to application logic (as with the channel above) is the caller's
// responsibility.
package wintoast
