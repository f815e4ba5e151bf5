package bus

// Topics shared by view-models, the navigation service and dialog renderers.
const (
	TopicNavigationPush = "navigation.push"
	TopicNavigationPop  = "navigation.pop"

	TopicDialogAlert       = "dialog.alert"
	TopicDialogSheet       = "dialog.sheet"
	TopicDialogQuestion    = "dialog.question"
	TopicDialogEntry       = "dialog.entry"
	TopicDialogToast       = "dialog.toast"
	TopicDialogShowLoading = "dialog.loading.show"
	TopicDialogHideLoading = "dialog.loading.hide"

	// TopicPropertyChanged carries model.PropertyChanged after a view-model
	// mutates bindable state.
	TopicPropertyChanged = "viewmodel.property-changed"
)
