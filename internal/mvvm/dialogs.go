package mvvm

import (
	"github.com/tinytelemetry/vmfirst/internal/bus"
	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
)

// The returned futures are resolved by whichever dialog renderer handles the
// topic. Nothing resolves them when no renderer is subscribed.

// ShowAlert shows a message with a single dismiss button.
func (b *BaseViewModel) ShowAlert(title, message, cancel string) *future.Future[bool] {
	info := &model.DialogAlertInfo{
		Title:   title,
		Message: message,
		Cancel:  cancel,
		Done:    future.New[bool](),
	}
	b.bus.Send(bus.TopicDialogAlert, info)
	return info.Done
}

// ShowSheet offers a list of actions. The future holds the chosen item,
// cancel or destruction.
func (b *BaseViewModel) ShowSheet(title, cancel, destruction string, items ...string) *future.Future[string] {
	info := &model.DialogSheetInfo{
		Title:       title,
		Cancel:      cancel,
		Destruction: destruction,
		Items:       append([]string(nil), items...),
		Done:        future.New[string](),
	}
	b.bus.Send(bus.TopicDialogSheet, info)
	return info.Done
}

// ShowQuestion asks a yes/no question. The future holds true for positive.
func (b *BaseViewModel) ShowQuestion(title, question, positive, negative string) *future.Future[bool] {
	info := &model.DialogQuestionInfo{
		Title:    title,
		Question: question,
		Positive: positive,
		Negative: negative,
		Done:     future.New[bool](),
	}
	b.bus.Send(bus.TopicDialogQuestion, info)
	return info.Done
}

// ShowEntryAlert prompts for a line of text.
func (b *BaseViewModel) ShowEntryAlert(title, message, cancel, ok, placeholder string) *future.Future[model.EntryResult] {
	info := &model.DialogEntryInfo{
		Title:       title,
		Message:     message,
		Cancel:      cancel,
		OK:          ok,
		Placeholder: placeholder,
		Done:        future.New[model.EntryResult](),
	}
	b.bus.Send(bus.TopicDialogEntry, info)
	return info.Done
}

// ShowToast shows a transient notice.
func (b *BaseViewModel) ShowToast(text string, long, center bool) {
	b.bus.Send(bus.TopicDialogToast, &model.DialogToastInfo{Text: text, LongTime: long, Center: center})
}

// ShowLoading shows the loading indicator with an optional message.
func (b *BaseViewModel) ShowLoading(message string) {
	b.bus.Send(bus.TopicDialogShowLoading, message)
}

// HideLoading hides the loading indicator.
func (b *BaseViewModel) HideLoading() {
	b.bus.Signal(bus.TopicDialogHideLoading)
}
