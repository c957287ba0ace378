package env

import corev1 "k8s.io/api/core/v1"

func FindEnvVar(envVars []corev1.EnvVar, name string) *corev1.EnvVar {
	for i, envVar := range envVars {
		if envVar.Name == name {
			// returning reference to env var to ease later manipulation of it
			return &envVars[i]
		}
	}

	return nil
}

func IsIn(envVars []corev1.EnvVar, name string) bool {
	return FindEnvVar(envVars, name) != nil
}

func NewEnvVarSourceForField(fieldPath string) *corev1.EnvVarSource {
	return &corev1.EnvVarSource{FieldRef: &corev1.ObjectFieldSelector{FieldPath: fieldPath}}
}
