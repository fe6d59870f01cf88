package config

// FirebaseServiceAccountKeyPath points at the service account JSON used by
// the FCM messaging client. Override with the FIREBASE_CREDENTIALS env var.
var FirebaseServiceAccountKeyPath = "config/firebase-service-account.json"
